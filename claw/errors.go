package claw

import (
	"fmt"
	"io"

	clawio "github.com/dzonerzy/go-claw/io"
)

// ErrorType represents parse error categories. Categories let callers react
// differently to user typos vs. structural problems without string matching.
type ErrorType string

const (
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeTooManyValues   ErrorType = "too_many_values"
	ErrorTypeLeftoverArgs    ErrorType = "leftover_args"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
)

// SetupError reports a mistake in the registration phase: duplicate names,
// a nameless named parameter, or a second positional group. It indicates a
// bug in the calling program, not bad user input, and is never produced by
// Parse.
type SetupError struct {
	Message string
}

func (e *SetupError) Error() string {
	return e.Message
}

func setupErrorf(format string, args ...any) *SetupError {
	return &SetupError{Message: fmt.Sprintf(format, args...)}
}

// ParseError reports bad end-user input: an unknown flag, an arity
// violation, a failed conversion, or a missing required parameter.
type ParseError struct {
	Type       ErrorType
	Message    string
	Flag       string // representation name of the offending parameter, if any
	Suggestion string // closest registered flag for unknown-flag errors
	Cause      error  // underlying *ConversionError for invalid_value errors
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean '--" + e.Suggestion + "'?)"
	}
	return e.Message
}

// Unwrap exposes the conversion failure behind an invalid_value error so
// callers can reach it with errors.As.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func parseErrorf(typ ErrorType, format string, args ...any) *ParseError {
	return &ParseError{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// ConversionError reports that a token could not be fully consumed as the
// requested type: either no parse at all, or trailing garbage after a
// partial one.
type ConversionError struct {
	Text     string // the offending token
	TypeName string // target Go type
	Err      error  // parser-level cause, may be nil for trailing garbage
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Text, e.TypeName, e.Err)
	}
	return fmt.Sprintf("cannot convert %q to %s: trailing characters", e.Text, e.TypeName)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// WriteError renders err to w with a category prefix, colored when w is a
// terminal. Setup errors are labeled as program defects; parse errors as
// argument errors. Other errors pass through with a plain prefix.
func WriteError(w io.Writer, err error) {
	pal := clawio.NewPalette(w)
	switch e := err.(type) {
	case *SetupError:
		fmt.Fprintf(w, "%s %s\n", pal.Error.Sprint("setup error:"), e.Message)
	case *ParseError:
		fmt.Fprintf(w, "%s %s\n", pal.Error.Sprint("argument error:"), e.Error())
	default:
		fmt.Fprintf(w, "%s %v\n", pal.Error.Sprint("error:"), err)
	}
}
