// Package errors provides the JSON error responses of the dashboard server.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorCode represents application-specific error codes.
type ErrorCode string

const (
	// General errors
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"

	// Tenant errors
	ErrorCodeTenantNotFound    ErrorCode = "TENANT_NOT_FOUND"
	ErrorCodeSwitchUnavailable ErrorCode = "SWITCH_UNAVAILABLE"
)

// ErrorResponse represents the standard error response format.
type ErrorResponse struct {
	Status    string    `json:"status"`
	ErrorCode ErrorCode `json:"error_code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// Handler provides error handling functionality.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new error handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// WriteErrorResponse writes a formatted error response to the HTTP response writer.
func (h *Handler) WriteErrorResponse(w http.ResponseWriter, statusCode int, errorCode ErrorCode, message string, requestID string) {
	h.logger.Warn("HTTP error response",
		zap.Int("status_code", statusCode),
		zap.String("error_code", string(errorCode)),
		zap.String("message", message),
		zap.String("request_id", requestID),
	)

	resp := ErrorResponse{
		Status:    "error",
		ErrorCode: errorCode,
		Message:   message,
		RequestID: requestID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// WriteValidationError writes a validation error response.
func (h *Handler) WriteValidationError(w http.ResponseWriter, message string, requestID string) {
	h.WriteErrorResponse(w, http.StatusBadRequest, ErrorCodeInvalidRequest, message, requestID)
}

// WriteTenantNotFound writes the rejection of an unknown tenant.
func (h *Handler) WriteTenantNotFound(w http.ResponseWriter, tenantID string, requestID string) {
	h.WriteErrorResponse(w, http.StatusNotFound, ErrorCodeTenantNotFound, "unknown tenant: "+tenantID, requestID)
}

// WriteSwitchUnavailable rejects a manual tenant switch on a host whose
// tenant is fixed by its subdomain.
func (h *Handler) WriteSwitchUnavailable(w http.ResponseWriter, host string, requestID string) {
	h.WriteErrorResponse(w, http.StatusConflict, ErrorCodeSwitchUnavailable, "tenant switching is not available on host: "+host, requestID)
}

// WriteNotFound writes a generic not found response.
func (h *Handler) WriteNotFound(w http.ResponseWriter, requestID string) {
	h.WriteErrorResponse(w, http.StatusNotFound, ErrorCodeNotFound, "endpoint not found", requestID)
}

// WriteMethodNotAllowed writes a method not allowed response.
func (h *Handler) WriteMethodNotAllowed(w http.ResponseWriter, requestID string) {
	h.WriteErrorResponse(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed", requestID)
}

// WriteInternalError writes an internal error response.
func (h *Handler) WriteInternalError(w http.ResponseWriter, message string, requestID string) {
	h.WriteErrorResponse(w, http.StatusInternalServerError, ErrorCodeInternalError, message, requestID)
}

// WriteRateLimitedError writes a rate limit exceeded response.
func (h *Handler) WriteRateLimitedError(w http.ResponseWriter, requestID string) {
	w.Header().Set("Retry-After", "1")
	h.WriteErrorResponse(w, http.StatusTooManyRequests, ErrorCodeRateLimited, "rate limit exceeded", requestID)
}
