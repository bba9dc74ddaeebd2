// Package errors is the project error type. Import it as perr.
//
// Every failure that crosses a package boundary carries an ErrorCode. The CLI turns the
// code into an exit status and the API turns it into an HTTP status and envelope
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error. The numeric value is part of the API envelope
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeUnavailable is a transient upstream failure, worth a retry
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	// ErrorCodeInvalidArgument is a well formed but unusable parameter (sort mode, limit)
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is a struct tag validation failure
	ErrorCodeValidation
	ErrorCodeJSON
	// ErrorCodeNotFound is an unknown user
	ErrorCodeNotFound
	// ErrorCodeSourceUnavailable means the record source refused or failed the fetch
	ErrorCodeSourceUnavailable
	// ErrorCodeWordList means the target word list is missing, unreadable or empty
	ErrorCodeWordList
)

var codes = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:           {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:             {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:       {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests:   {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeInvalidArgument:   {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:        {"validation", http.StatusBadRequest},
	ErrorCodeJSON:              {"json", http.StatusBadRequest},
	ErrorCodeNotFound:          {"not_found", http.StatusNotFound},
	ErrorCodeSourceUnavailable: {"source_unavailable", http.StatusBadGateway},
	ErrorCodeWordList:          {"word_list_unreadable", http.StatusInternalServerError},
}

// String is the log name of c
func (c ErrorCode) String() string {
	if v, ok := codes[c]; ok {
		return v.name
	}
	return codes[ErrorCodeUnknown].name
}

// Status is the HTTP status for c
func (c ErrorCode) Status() int {
	if v, ok := codes[c]; ok {
		return v.status
	}
	return http.StatusInternalServerError
}

// Error carries a code, a message, an optional offending field and the wrapped cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Code of the error
func (e *Error) Code() ErrorCode { return e.code }


// Field names the input that failed, empty when not tied to one
func (e *Error) Field() string { return e.field }

// New returns an error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches code and msg to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with formatting
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// WithField returns a copy of err naming field. Foreign errors pass through unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a status code
func HTTPStatus(err error) int { return CodeOf(err).Status() }

// Public returns the message an API caller may see. Foreign errors are not leaked
func Public(err error) string {
	if e, ok := As(err); ok {
		return e.msg
	}
	return "internal error"
}

// Retryable is true for transient transport and rate limit failures
func Retryable(err error) bool {
	c := CodeOf(err)
	return c == ErrorCodeUnavailable || c == ErrorCodeTooManyRequests
}

// NotFoundf builds an ErrorCodeNotFound error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf builds an ErrorCodeInvalidArgument error
func InvalidArgf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidArgument, format, a...)
}

// JSONErrf builds an ErrorCodeJSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// SourceUnavailablef builds an ErrorCodeSourceUnavailable error
func SourceUnavailablef(format string, a ...any) error {
	return Newf(ErrorCodeSourceUnavailable, format, a...)
}

// WordListf builds an ErrorCodeWordList error
func WordListf(format string, a ...any) error { return Newf(ErrorCodeWordList, format, a...) }
