package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-api/internal/delivery/http/response"
	"go-jobboard-api/pkg/apperror"
	"go-jobboard-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors appended to the gin context. Unknown errors are
// logged server-side and surfaced as a generic 500; internals never leak to
// the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
					logger.Log.Error("request failed",
						"error", appErr.Err.Error(),
						"path", c.FullPath(),
						"request_id", c.GetString("RequestID"),
					)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error",
					"error", err.Error(),
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
