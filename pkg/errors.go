package pkg

import "fmt"

// AppError is the structured error handlers return to clients. Code is a
// stable machine-readable identifier; Message is the user-visible text.
// Err carries provider detail and is only surfaced for server-side failures.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON failure envelope: success is always false, details
// appears only when provider detail should be surfaced.
type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Success: false, Code: e.Code, Error: e.Message}
	if e.Err != nil {
		out.Details = e.Err.Error()
	}
	return out
}
