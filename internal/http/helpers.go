package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/auth-service/internal/auth"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// respondError maps a service error onto the response envelope.
// Unexpected errors are logged and reported as a generic 500.
func respondError(c *gin.Context, err error, context string) {
	status := auth.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("Internal error (%s): %v", context, err)
		message = "internal server error"
	}
	c.JSON(status, Response{Success: false, Message: message})
}

// respondSuccess sends a success envelope with the given status.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}
