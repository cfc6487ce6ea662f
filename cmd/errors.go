package cmd

import (
	"errors"
	"fmt"
)

// TerminalTooSmallError means the board does not fit the terminal. Cols and
// Rows are -1 when the size could not be read at all.
type TerminalTooSmallError struct {
	NeedCols int
	NeedRows int
	Cols     int
	Rows     int
	cause    error
}

func (e *TerminalTooSmallError) Error() string {
	if e == nil {
		return "terminal too small"
	}
	if e.cause != nil {
		return fmt.Sprintf("cannot read terminal size (need at least %dx%d): %v", e.NeedCols, e.NeedRows, e.cause)
	}
	return fmt.Sprintf("terminal too small! resize to at least %dx%d (currently %dx%d)", e.NeedCols, e.NeedRows, e.Cols, e.Rows)
}

func (e *TerminalTooSmallError) Unwrap() error { return e.cause }

func IsTerminalTooSmall(err error) bool {
	var e *TerminalTooSmallError
	return errors.As(err, &e)
}
