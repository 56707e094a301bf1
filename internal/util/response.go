package util

import (
	"course_catalog_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified envelope: {message, data} on success,
// {message, error} on failure. The error field carries an opaque machine
// code only; upstream error details stay in the logs.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

const (
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeNotFound       = "not_found"
	CodeInternalError  = "internal_error"
)

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message, code string) {
	c.JSON(status, Response{
		Message: message,
		Error:   code,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, CodeInvalidRequest)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized", CodeUnauthorized)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, CodeForbidden)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, CodeNotFound)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message, CodeInternalError)
}

func LogInternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c, message)
}
