package script

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when a scene runs past its time limit.
var ErrTimeout = errors.New("scene script timed out")

// ScriptError reports a failed scene script.
type ScriptError struct {
	// Source names the script, usually its file path.
	Source string
	// Line is the failing line, or 0 if unknown.
	Line int
	// Message is the Lua error text without position prefix.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
