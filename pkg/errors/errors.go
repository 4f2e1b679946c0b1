// Package errors defines the application errors surfaced over HTTP.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error kind independent of its message.
type ErrorCode string

const (
	CodeUnknown           ErrorCode = "UNKNOWN"
	CodeInvalidParam      ErrorCode = "INVALID_PARAM"
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeMissingCredential ErrorCode = "CONFIG_MISSING_CREDENTIAL"
	CodeGenerationFailed  ErrorCode = "GENERATION_FAILED"
)

// AppError is an error with a public message and a private cause.
// Message is safe to show to callers; Err is for logs only.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so wrapped copies of a predefined error compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithError returns a copy of e carrying err as its cause.
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeInvalidParam:
		return http.StatusBadRequest
	default:
		// Both configuration and generation failures are reported as 500.
		return http.StatusInternalServerError
	}
}

var (
	ErrInvalidParam     = New(CodeInvalidParam, "invalid parameter")
	ErrInternal         = New(CodeInternalError, "internal server error")
	ErrAPIKeyMissing    = New(CodeMissingCredential, "API key is not configured")
	ErrGenerationFailed = New(CodeGenerationFailed, "Failed to generate message")
)

// AsAppError returns err as an *AppError, wrapping unknown errors as
// generation failures.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrGenerationFailed.WithError(err)
}
