package prompt

import (
	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/reader"
)

var (
	// ErrInvalidQuestion marks a malformed call (empty question text or an
	// empty batch). It is raised before any input is read.
	ErrInvalidQuestion = errors.New("invalid question")

	// ErrAttemptsExhausted matches every *AttemptsError.
	ErrAttemptsExhausted = errors.New("maximum attempts reached")

	// ErrCanceled reports that the user aborted. The whole session stops.
	ErrCanceled = reader.ErrCanceled

	// ErrConfirmation marks a confirmation question that could not be answered.
	ErrConfirmation = errors.New("confirmation failed")
)

// AttemptsError is returned when a question runs out of attempts.
// Its message is the configured attempts error text.
type AttemptsError struct {
	Message  string
	Attempts int
}

func (e *AttemptsError) Error() string {
	return e.Message
}

// Is reports a match against ErrAttemptsExhausted.
func (e *AttemptsError) Is(target error) bool {
	return target == ErrAttemptsExhausted
}

// InputError is returned when the line reader keeps failing.
// Its message is the reader's error text.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func invalidQuestion(msg string) error {
	return errors.WithHint(errors.Wrap(ErrInvalidQuestion, msg),
		"every question needs non-empty text")
}
