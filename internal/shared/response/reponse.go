package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response là envelope cho các response không mang resource:
// error, validation errors, message.
type Response struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   *Error   `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success responses
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{Message: message})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// ValidationFailed trả về 400 với danh sách field-level messages
func ValidationFailed(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, Response{Errors: messages})
}

// Common error responses
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
