package router

import (
	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/current", h.Current)
	rg.PATCH("/current", h.UpdateCurrent)
	rg.POST("/switch", h.Switch)
}
