package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing failure messages returned in the response body.
const (
	MessageValidationFailed = "Please fill in all required fields"
	MessagePayloadTooLarge  = "Image file is too large. Maximum size is 100MB."
	MessageAttachmentFailed = "Error processing uploaded image"
	MessageDeliveryFailed   = "Failed to send complaint email. Please try again or contact us directly."
	MessageInternalError    = "An unexpected error occurred. Please try again later."
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationFailed reports an incomplete submission.
func NewValidationFailed() error {
	return NewDomainError("VALIDATION_FAILED", MessageValidationFailed, http.StatusBadRequest, nil)
}

// NewPayloadTooLarge reports an attachment exceeding the configured cap.
func NewPayloadTooLarge(limitBytes int64) error {
	return NewDomainError("PAYLOAD_TOO_LARGE", MessagePayloadTooLarge, http.StatusBadRequest,
		map[string]any{"limit_bytes": limitBytes})
}

// NewAttachmentProcessingFailed reports a failure while reading or encoding
// the uploaded file.
func NewAttachmentProcessingFailed(err error) error {
	return &DomainError{
		Code:       "ATTACHMENT_PROCESSING_FAILED",
		Message:    MessageAttachmentFailed,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewDeliveryFailed reports a rejected or failed provider send. The raw
// provider error text is carried in Details for the response error field.
func NewDeliveryFailed(err error) error {
	details := map[string]any{}
	if err != nil {
		details["provider_error"] = err.Error()
	}
	return &DomainError{
		Code:       "DELIVERY_FAILED",
		Message:    MessageDeliveryFailed,
		HTTPStatus: http.StatusInternalServerError,
		Details:    details,
		Err:        err,
	}
}

// NewInternalError wraps anything unanticipated.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MessageInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ProviderError extracts the raw provider error text, if any.
func (e *DomainError) ProviderError() string {
	if e == nil || e.Details == nil {
		return ""
	}
	if text, ok := e.Details["provider_error"].(string); ok {
		return text
	}
	return ""
}
