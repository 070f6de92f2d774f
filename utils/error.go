package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes carried on the wire alongside the human-readable message.
const (
	CodeNotFound          = "notFound"
	CodeAlreadyExists     = "alreadyExists"
	CodeValidationFailure = "validationFailure"
	CodeInvalidTransition = "invalidTransition"
	CodeInternalError     = "internalError"
)

// AppError is a typed application error with a stable code.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFound(format string, args ...any) error {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewAlreadyExists(format string, args ...any) error {
	return &AppError{Code: CodeAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func NewValidationFailure(format string, args ...any) error {
	return &AppError{Code: CodeValidationFailure, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidTransition(format string, args ...any) error {
	return &AppError{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the application error code from err, defaulting to
// internalError for plain infrastructure failures.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// ErrorHandler is a middleware to catch panics and return structured errors.
// Like every other failure, panics are reported inside an HTTP 200 envelope;
// callers detect failure from the body, never from the transport status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusOK, gin.H{
					"error": "An unexpected error occurred. Please try again later.",
					"code":  CodeInternalError,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError writes the uniform failure envelope for err.
func JSONError(c *gin.Context, err error) {
	Logger := GetLogger()
	Logger.Warn("request failed", zap.String("code", ErrorCode(err)), zap.Error(err))

	message := err.Error()
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(http.StatusOK, gin.H{
		"error": message,
		"code":  ErrorCode(err),
	})
}
