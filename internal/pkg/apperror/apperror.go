// Package apperror carries errors that know which HTTP status they map to.
package apperror

// AppError pairs a user-facing message with the HTTP status it should
// produce. The wrapped error stays internal and is never serialized.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a sentinel AppError. Domain packages declare these as
// package-level vars so callers can match them with errors.Is.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
