package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a token fails signature, expiry or type checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTaskNotFound is returned when a task is missing, deleted or owned by another user.
	ErrTaskNotFound = errors.New("task not found")
)

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a failure already mapped to an HTTP response. It is created
// exactly once per failure and serialized exactly once by the error handler;
// an AppError must never be wrapped into another AppError.
type AppError struct {
	Name       string
	StatusCode int
	Details    interface{} // string or []FieldError
	Headers    map[string]string
}

func (e *AppError) Error() string {
	if s, ok := e.Details.(string); ok && s != "" {
		return fmt.Sprintf("%s: %s", e.Name, s)
	}
	return e.Name
}

// ErrorBody is the inner object of the uniform error envelope.
type ErrorBody struct {
	Code    int         `json:"code"`
	Name    string      `json:"name"`
	Details interface{} `json:"details"`
}

// ErrorResponse is the uniform JSON envelope returned on every failure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Response converts an AppError to the wire envelope.
func (e *AppError) Response() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:    e.StatusCode,
		Name:    e.Name,
		Details: e.Details,
	}}
}

// New creates an AppError with an explicit name and status.
func New(name string, statusCode int, details interface{}) *AppError {
	return &AppError{Name: name, StatusCode: statusCode, Details: details}
}

// BadRequest creates a 400 error. Details may be a string or a list of
// field violations.
func BadRequest(details interface{}) *AppError {
	return New("Bad request", http.StatusBadRequest, details)
}

// Unauthorized creates a 401 error.
func Unauthorized(details string) *AppError {
	return New("Unauthorized", http.StatusUnauthorized, details)
}

// NotFound creates a 404 error.
func NotFound(details string) *AppError {
	return New("Not found", http.StatusNotFound, details)
}

// MethodNotAllowed creates a 405 error carrying the Allow header for the route.
func MethodNotAllowed(allow string) *AppError {
	e := New("Method not allowed", http.StatusMethodNotAllowed, "Invalid method")
	e.Headers = map[string]string{"Allow": allow}
	return e
}

// NotAcceptable creates a 406 error.
func NotAcceptable(details string) *AppError {
	return New("Not acceptable", http.StatusNotAcceptable, details)
}

// UnsupportedMediaType creates a 415 error.
func UnsupportedMediaType(details string) *AppError {
	return New("Unsupported media type", http.StatusUnsupportedMediaType, details)
}

// Internal creates a 500 error. Details must not leak internal state.
func Internal(details string) *AppError {
	return New("Internal server error", http.StatusInternalServerError, details)
}
