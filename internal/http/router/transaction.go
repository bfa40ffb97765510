package router

import (
	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/handler"
)

func TransactionRouter(rg *gin.RouterGroup, h *handler.TransactionHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/export", h.Export)
}
