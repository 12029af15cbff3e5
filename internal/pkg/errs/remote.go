package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteUnavailable marks failures where no usable answer came back (network, timeout).
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	// ErrRemoteRejected marks answers in which the remote service refused the request.
	ErrRemoteRejected = errors.New("remote service rejected request")
	// ErrRemoteMalformed marks answers that could not be decoded.
	ErrRemoteMalformed = errors.New("remote service response is malformed")
)

// RemoteError describes a failed call to another service. Message carries the
// text the remote side sent, if any, verbatim; Cause carries the local error.
type RemoteError struct {
	Operation  string
	StatusCode int
	Message    string
	Kind       error
	Cause      error
}

// NewRemoteUnavailableError wraps a transport failure.
func NewRemoteUnavailableError(operation string, cause error) *RemoteError {
	return &RemoteError{Operation: operation, Kind: ErrRemoteUnavailable, Cause: cause}
}

// NewRemoteRejectedError records a refusal together with the remote message.
func NewRemoteRejectedError(operation string, statusCode int, message string) *RemoteError {
	return &RemoteError{Operation: operation, StatusCode: statusCode, Message: message, Kind: ErrRemoteRejected}
}

// NewRemoteMalformedError wraps a decoding failure.
func NewRemoteMalformedError(operation string, statusCode int, cause error) *RemoteError {
	return &RemoteError{Operation: operation, StatusCode: statusCode, Kind: ErrRemoteMalformed, Cause: cause}
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Operation, e.kind())
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, sanitize(e.Message))
	}
	return withCause(msg, e.Cause)
}

// Unwrap exposes both the classification sentinel and the local cause.
func (e *RemoteError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.kind()}
	}
	return []error{e.kind(), e.Cause}
}

func (e *RemoteError) kind() error {
	if e.Kind == nil {
		return ErrRemoteUnavailable
	}
	return e.Kind
}
