package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/middleware"
	"runway.app/api/internal/model"
)

// principal reads the caller set by middleware.RequireAuth and answers 401
// when the route was mounted without it.
func principal(c *gin.Context) (model.Principal, bool) {
	p, ok := middleware.GetPrincipal(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	}
	return p, ok
}
