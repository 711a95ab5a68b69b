package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status alongside the underlying error so
// handlers can surface failures without switching on error strings.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewBadRequestError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	return NewAppError(http.StatusNotFound, err, message)
}

func NewMethodNotAllowedError(err error, message string) *AppError {
	return NewAppError(http.StatusMethodNotAllowed, err, message)
}

// NewUnprocessableError flags a structurally invalid submission, e.g.
// an answer count that does not match the question count.
func NewUnprocessableError(err error, message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, err, message)
}

// NewConflictError flags a submission rejected by gating rules rather
// than graded wrong, so clients can tell the two apart.
func NewConflictError(err error, message string) *AppError {
	return NewAppError(http.StatusConflict, err, message)
}

func NewInternalError(err error, message string) *AppError {
	return NewAppError(http.StatusInternalServerError, err, message)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
