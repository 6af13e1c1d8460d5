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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// ServiceErrorStatus maps a service error to the HTTP status and the
// message shown to the client.
func ServiceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmptyPrompt):
		return http.StatusBadRequest, "Please tell us your mood or travel interests"
	case IsModelError(err):
		return http.StatusBadGateway, "The travel assistant is unavailable, please try again"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := ServiceErrorStatus(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("service error",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
	}
	RespondError(c, code, message)
}
