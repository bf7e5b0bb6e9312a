// Package response writes JSON bodies in the shape the web client expects:
// successes are the bare resource, failures are an error object.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// MessageBody is returned by operations without a resource to show.
type MessageBody struct {
	Message string `json:"message"`
}

func Success(ctx *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

func Message(ctx *gin.Context, status int, message string) {
	Success(ctx, status, MessageBody{Message: message})
}

// Error aborts the request with an ErrorBody.
func Error(ctx *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, ErrorBody{
		Error:     message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	})
}
