// Package errors defines the coded errors plotlib returns.
//
// Callers branch on a [Code] instead of matching message text. The CLI maps
// codes to exit messages and the server maps them to HTTP statuses:
//
//	INVALID_INPUT       bad argument (size, range, document syntax)
//	INVALID_SERIES      series rejected at insertion
//	INVALID_THEME       theme failed validation or is unknown
//	INVALID_PATH        output path unusable
//	UNSUPPORTED_FORMAT  extension or format name not recognized
//	IO_ERROR            destination could not be written
//	DISPLAY_UNAVAILABLE no window could be opened
//	DEGENERATE_RANGE    zero-extent axis, padded away by the layout
//	NOT_FOUND           input file missing
//	INTERNAL_ERROR      anything else
//
// Typical use:
//
//	if err := p.Save("out.webp"); errors.Is(err, errors.ErrCodeUnsupportedFormat) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure kind.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidSeries Code = "INVALID_SERIES"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeUnsupportedFormat  Code = "UNSUPPORTED_FORMAT"
	ErrCodeIO                 Code = "IO_ERROR"
	ErrCodeDisplayUnavailable Code = "DISPLAY_UNAVAILABLE"

	// Never reaches callers of the plot API; the layout pads such ranges.
	ErrCodeDegenerateRange Code = "DEGENERATE_RANGE"

	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// IsClientError reports whether c blames the caller's input rather than
// the environment.
func (c Code) IsClientError() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidSeries, ErrCodeInvalidTheme,
		ErrCodeInvalidPath, ErrCodeUnsupportedFormat:
		return true
	}
	return false
}

// Error carries a Code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// outermost finds the first *Error in err's chain.
func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	e := outermost(err)
	return e != nil && e.Code == code
}

// GetCode returns the code of the outermost *Error, or "" if there is none.
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code,
// or err.Error() for uncoded errors.
func UserMessage(err error) string {
	if e := outermost(err); e != nil {
		return e.Message
	}
	return err.Error()
}
