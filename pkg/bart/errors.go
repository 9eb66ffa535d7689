package bart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTool   = errors.New("bart: unknown tool")
	ErrUnknownParam  = errors.New("bart: unknown parameter")
	ErrMissingParam  = errors.New("bart: missing required parameter")
	ErrBadValue      = errors.New("bart: bad parameter value")
	ErrTupleLength   = errors.New("bart: tuple members differ in length")
	ErrMissingOutput = errors.New("bart: tool did not write output")

	// ErrToolFailed matches every *ToolError.
	ErrToolFailed = errors.New("bart: tool failed")
)

// ToolError reports a toolbox process that exited with a non-zero status.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("bart %s: exit status %d", e.Tool, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + lastLine(s)
	}
	return msg
}

// Is makes errors.Is(err, ErrToolFailed) hold for every ToolError.
func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}

// lastLine keeps error strings to one line; the toolbox prints its reason last.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
