package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerojournal/tradepulse/internal/domain/dto"
	"github.com/zerojournal/tradepulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// structured JSON error response. Handlers that call c.Error(err) and
// return without writing a body get a 500 with the standard error shape.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("unhandled request error")

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	var resp dto.ErrorResponse
	if er, ok := err.(dto.ErrorResponse); ok {
		resp = er
	} else {
		resp = dto.NewErrorResponse("internal server error", err)
	}
	c.JSON(status, resp)
}

// AbortWithError stops the chain and writes a structured error body with
// the given status. Intended for handlers that detect bad input or
// downstream failures themselves.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	resp := dto.NewErrorResponse(message, err)
	_ = c.Error(resp)
	c.AbortWithStatusJSON(status, resp)
}
