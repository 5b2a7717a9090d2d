package wizard

import "errors"

var (
	ErrBusy            = errors.New("a request is already in progress")
	ErrNotReady        = errors.New("content is not ready")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownHeadline = errors.New("unknown headline")
	ErrUnknownLength   = errors.New("unknown video length")
)

const (
	msgIdeasFailed      = "Failed to generate video ideas. Please try again."
	msgContentFailed    = "Failed to generate content. Please try again."
	msgRegenerateFailed = "Failed to regenerate content. Please try again."
)

// StepError is a failure shown to the user. Error returns the display message;
// the transport error stays reachable through Unwrap.
type StepError struct {
	Message string
	Err     error
}

func (e *StepError) Error() string { return e.Message }
func (e *StepError) Unwrap() error { return e.Err }
