package curses

import (
	"errors"
	"fmt"
)

// Errors returned by curses operations. They are usually wrapped in an
// OperationError; test with errors.Is.
var (
	ErrInit              = errors.New("screen initialisation failed")
	ErrClosed            = errors.New("window closed")
	ErrOutOfBounds       = errors.New("position outside window")
	ErrWrite             = errors.New("cell write failed")
	ErrFormatOverflow    = errors.New("formatted text larger than window")
	ErrRefresh           = errors.New("refresh failed")
	ErrNoInput           = errors.New("no input pending")
	ErrInput             = errors.New("input read failed")
	ErrMode              = errors.New("input mode change failed")
	ErrNoColors          = errors.New("terminal has no colours")
	ErrColorDisabled     = errors.New("colour not started")
	ErrCannotChangeColor = errors.New("terminal palette is fixed")
	ErrReservedPair      = errors.New("pair 0 is reserved")
	ErrPairRange         = errors.New("colour pair out of range")
	ErrColorRange        = errors.New("colour index out of range")
	ErrComponentRange    = errors.New("colour component out of range")
	ErrCursorLevel       = errors.New("invalid cursor visibility")
	ErrCursor            = errors.New("cursor update failed")
)

// OperationError records the curses call that failed and the cause.
type OperationError struct {
	Op      string // e.g. "wmove", "refresh"
	Kind    error  // one of the Err* sentinels
	Context string
	Err     error // backend error, may be nil
}

func opError(op string, kind error, err error) *OperationError {
	return &OperationError{Op: op, Kind: kind, Err: err}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(format string, args ...any) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = fmt.Sprintf(format, args...)
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
