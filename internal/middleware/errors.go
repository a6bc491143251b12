package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/internal/domain/dto"
	"github.com/guttosm/awardpulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON error response
// when the handler did not write one itself.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	logger.L().Error().Err(last.Err).Str("path", c.Request.URL.Path).Msg("request failed")

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes the standard error body.
//
// Parameters:
//   - status: HTTP status code to send.
//   - message: user-facing summary.
//   - err: optional cause, rendered in the "error" field.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
