package response

import (
	"net/http"

	"go-jobboard-api/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// ValidationError sends a 400 with the per-field messages in the error body.
func ValidationError(c *gin.Context, messages []string) {
	Error(c, http.StatusBadRequest, "Validation failed", messages)
}

func requestID(c *gin.Context) string {
	v, _ := c.Get(string(domain.KeyRequestID))
	id, _ := v.(string)
	return id
}
