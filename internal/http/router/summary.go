package router

import (
	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/handler"
)

func SummaryRouter(rg *gin.RouterGroup, h *handler.SummaryHandler) {
	rg.GET("", h.Get)
}
