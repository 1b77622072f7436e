package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wildrydes/internal/apperrors"
)

// ErrorBody is the wire shape of every error response. Reference is the
// request correlation id so operators can match a client report to logs.
type ErrorBody struct {
	Error     string    `json:"Error"`
	Reference string    `json:"Reference"`
	Timestamp time.Time `json:"Timestamp"`
}

// RequestID returns the correlation id set by the request-id middleware.
func RequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if str, ok := id.(string); ok {
			return str
		}
	}
	return ""
}

// RequestIDFromContext reads the correlation id propagated into the
// request context for layers below the handler.
func RequestIDFromContext(ctx context.Context) string {
	if id := ctx.Value(RequestIDKey); id != nil {
		if str, ok := id.(string); ok {
			return str
		}
	}
	return ""
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:     message,
		Reference: RequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// AppErrorResponse maps a classified error to its HTTP status and
// caller-safe message.
func AppErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, apperrors.HTTPStatus(err), apperrors.ClientMessage(err))
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
