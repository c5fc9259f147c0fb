package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeNotFound             = "NOT_FOUND"
	CodePaymentNotFound      = "PAYMENT_NOT_FOUND"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeOwnerNotFound        = "OWNER_NOT_FOUND"
	CodeInvalidSignature     = "INVALID_SIGNATURE"
	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeEmailServiceError    = "EMAIL_SERVICE_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
)

// APIError carries an HTTP status alongside a sanitized client message.
// The wrapped internal error is logged, never sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 APIError
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest creates a 400 APIError
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 APIError
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

// Conflict creates a 409 APIError
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 APIError retaining the internal cause
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: internalErr}
}

// InternalError creates a sanitized 500 APIError - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        internalErr,
	}
}
