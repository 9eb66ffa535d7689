package cli

import (
	"errors"
	"fmt"

	"gobart/pkg/bart"
)

// Process exit codes.
const (
	exitValidation = 1
	exitRuntime    = 2
	exitToolFailed = 3
)

// ExitError is an error that carries a specific process exit code.
// Commands return it to signal the desired exit code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError creates a new ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// classify maps client errors onto exit codes.
func classify(err error) error {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, bart.ErrToolFailed):
		return exitError(exitToolFailed, "%s", err)
	case errors.Is(err, bart.ErrUnknownTool),
		errors.Is(err, bart.ErrUnknownParam),
		errors.Is(err, bart.ErrMissingParam),
		errors.Is(err, bart.ErrBadValue),
		errors.Is(err, bart.ErrTupleLength):
		return exitError(exitValidation, "%s", err)
	}
	return exitError(exitRuntime, "%s", err)
}
