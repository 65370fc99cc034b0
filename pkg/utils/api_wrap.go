package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError is the body of every failed request.
type APIError struct {
	Status  string      `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Issues  interface{} `json:"issues,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	v, _ := c.Get("trace_id")
	id, _ := v.(string)
	return id
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondError writes a caller error. issues may be nil.
func RespondError(c *gin.Context, status int, code, message string, issues interface{}) {
	c.AbortWithStatusJSON(status, APIError{
		Status:  "error",
		Code:    code,
		Message: message,
		Issues:  issues,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps errors raised below the controllers to a response.
// Upstream faults are reported as 502, configuration faults as 500.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var extErr *ExternalError
	if !errors.As(err, &extErr) {
		logger.Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceID(c)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
			Status:  "error",
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
			TraceID: traceID(c),
		})
		return
	}

	status := http.StatusBadGateway
	switch {
	case errors.Is(extErr, ErrMissingConfiguration):
		status = http.StatusInternalServerError
		logger.Error("missing configuration", zap.String("message", extErr.Message))
	case errors.Is(extErr, ErrInvalidTaggingInput):
		status = http.StatusInternalServerError
		logger.Error("invalid tagging input", zap.Error(extErr))
	default:
		logger.Warn("upstream error",
			zap.String("code", extErr.Code()),
			zap.Error(extErr),
			zap.String("trace_id", traceID(c)),
		)
	}

	c.AbortWithStatusJSON(status, APIError{
		Status:  "error",
		Code:    extErr.Code(),
		Message: extErr.Message,
		Details: extErr.Details,
		TraceID: traceID(c),
	})
}
