package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the shape of every message-only response, success or failure.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody adds validation details and the request id to a failure message.
type ErrorBody struct {
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
}

// JSON writes data as-is. Services decide the body shape.
func JSON(ctx *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	if data == nil {
		ctx.Status(status)
		return
	}
	ctx.JSON(status, data)
}

func Message(ctx *gin.Context, status int, message string) {
	JSON(ctx, status, MessageBody{Message: message})
}

func Error(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorBody{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Errors:    details,
	})
}

// Abort writes an error body and stops the handler chain. Used by middleware.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
	})
}

// Internal reports an unexpected failure without leaking its cause.
func Internal(ctx *gin.Context) {
	Error(ctx, http.StatusInternalServerError, "Internal server error", nil)
}
