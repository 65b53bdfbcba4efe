package handler

import (
	"net/http"

	"github.com/abdullah9786/nawab-products/internal/middleware"
	"github.com/abdullah9786/nawab-products/internal/response"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// bindJSON decodes the request body into req. On failure it writes a 400
// and returns false; the caller must return without writing again.
// Field validation happens in the service layer so that every problem is
// reported in one message.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid JSON: "+err.Error()))
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses. Anything that is not
// a service.Error is logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindConflict:
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, response.Fail(err.Error()))
	case service.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, response.Fail(err.Error()))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(fallback)
		c.JSON(http.StatusInternalServerError, response.Fail(fallback))
	}
}

// isAdmin reports whether the request carries a valid admin session.
func isAdmin(c *gin.Context) bool {
	return middleware.GetClaims(c) != nil
}
