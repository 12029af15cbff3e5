package delivery

const (
	// DefaultSuccessMessage acknowledges an action when the backend sends no message.
	DefaultSuccessMessage = "처리되었습니다."
	// DefaultFailureMessage is used when neither the backend nor the transport explains a failure.
	DefaultFailureMessage = "요청 처리 중 오류가 발생했습니다."
)

// ActionResult is the uniform outcome of invoking any action kind. Callers
// branch on OK; a failed result is a value, never a Go error.
type ActionResult struct {
	OK      bool
	Message string
}

// Succeeded returns an OK result, falling back to DefaultSuccessMessage.
func Succeeded(message string) ActionResult {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return ActionResult{OK: true, Message: message}
}

// Failed returns a failed result, falling back to DefaultFailureMessage.
func Failed(message string) ActionResult {
	if message == "" {
		message = DefaultFailureMessage
	}
	return ActionResult{OK: false, Message: message}
}
