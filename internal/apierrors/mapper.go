package apierrors

import (
	"errors"
	"strings"

	analyticsProcessor "stagepass/internal/analytics/processor"
	paymentlinksProcessor "stagepass/internal/paymentlinks/processor"
	settlementProcessor "stagepass/internal/settlement/processor"
	"stagepass/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Settlement engine errors
	case errors.Is(err, settlementProcessor.ErrPaymentNotFound):
		return NotFound(CodePaymentNotFound, "Payment not found")

	case errors.Is(err, settlementProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Product not found")

	case errors.Is(err, settlementProcessor.ErrEventNotFound):
		return NotFound(CodeEventNotFound, "Event not found")

	case errors.Is(err, settlementProcessor.ErrOwnerNotFound):
		return NotFound(CodeOwnerNotFound, "Event owner not found")

	case errors.Is(err, settlementProcessor.ErrNotCompleted):
		return Conflict(CodeInvalidInput, "Payment is not completed")

	case errors.Is(err, settlementProcessor.ErrAlreadyDelivered):
		return Conflict(CodeInvalidInput, "Payment has already been delivered")

	// Payment link issuance errors
	case errors.Is(err, paymentlinksProcessor.ErrProductNotFound):
		return NotFound(CodeProductNotFound, "Product not found")

	case errors.Is(err, paymentlinksProcessor.ErrProviderFailure):
		return ServiceUnavailable(
			CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.",
			err,
		)

	// Analytics errors
	case errors.Is(err, analyticsProcessor.ErrPaymentNotCompleted):
		return Conflict(CodeInvalidInput, "Payment is not completed")

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "payment provider") || strings.Contains(errMsg, "payment link") {
		return ServiceUnavailable(
			CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
