package api

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/store"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeRecordNotFound   ErrorCode = "RECORD_NOT_FOUND"
	ErrorCodeUnknownView      ErrorCode = "UNKNOWN_VIEW"
	ErrorCodeRouteNotFound    ErrorCode = "ROUTE_NOT_FOUND"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// notFoundMessages are the messages the site shows for missing detail pages.
var notFoundMessages = map[string]string{
	store.CollectionExpert:      "未找到对应的专家。",
	store.CollectionInstitution: "未找到对应的机构。",
	store.CollectionLaw:         "未找到对应的法规。",
	store.CollectionCase:        "未找到对应的案例。",
	store.CollectionReport:      "未找到对应的报告。",
}

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendRecordNotFoundError sends the site's not-found message for a detail page
func SendRecordNotFoundError(c *gin.Context, collection, id string) {
	message, ok := notFoundMessages[collection]
	if !ok {
		message = "未找到对应的记录。"
	}
	SendError(c, http.StatusNotFound, ErrorCodeRecordNotFound, message,
		ErrorDetail{Field: "id", Message: collection + " '" + id + "' does not exist"})
}

// SendUnknownViewError sends a standardized unknown view error
func SendUnknownViewError(c *gin.Context, view string) {
	SendError(c, http.StatusNotFound, ErrorCodeUnknownView,
		"View '"+view+"' does not exist")
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendLookupError maps a detail lookup failure to its response
func SendLookupError(c *gin.Context, operation string, err error) {
	var notFound *errors.RecordNotFoundError
	if stderrors.As(err, &notFound) {
		SendRecordNotFoundError(c, notFound.Collection, notFound.ID)
		return
	}
	SendInternalError(c, operation, err)
}
