package http

import (
	"errors"
	"net/http"

	"rider/internal/core/application/usecases/commands"
	"rider/internal/core/application/workflow"
	"rider/internal/pkg/errs"
)

// statusOf maps an application error to a response status and message.
// Backend messages are passed through verbatim.
func statusOf(err error) (int, string) {
	var remote *errs.RemoteError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, workflow.ErrSuperseded), errors.Is(err, workflow.ErrNoTab):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &remote):
		if remote.StatusCode == http.StatusUnauthorized || remote.StatusCode == http.StatusForbidden {
			return remote.StatusCode, commands.FailureMessage(err)
		}
		return http.StatusBadGateway, commands.FailureMessage(err)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func statusOfOutcome(outcome workflow.Outcome) int {
	switch outcome.Reason {
	case workflow.ReasonNone:
		return http.StatusOK
	case workflow.ReasonInFlight, workflow.ReasonNotAllowed:
		return http.StatusConflict
	case workflow.ReasonInvalid:
		return http.StatusUnprocessableEntity
	case workflow.ReasonNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
