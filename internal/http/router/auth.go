package router

import (
	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/handler"
)

// AuthRouter mounts signup and login publicly; logout and me need a token.
func AuthRouter(rg *gin.RouterGroup, requireAuth gin.HandlerFunc, h *handler.AuthHandler) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)

	authed := rg.Group("")
	authed.Use(requireAuth)
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/me", h.Me)
	}
}
