package router

import (
	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/handler"
	"runway.app/api/internal/http/middleware"
	"runway.app/api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	handler.UseJSONFieldNames()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(services.Auth())

	authHandler := handler.NewAuthHandler(services.Auth())
	AuthRouter(router.Group("/auth"), requireAuth, authHandler)

	v1 := router.Group("/api/v1")
	v1.Use(requireAuth)
	{
		orgHandler := handler.NewOrganizationHandler(services.Organizations(), services.Auth())
		OrganizationRouter(v1.Group("/organizations"), orgHandler)

		txnHandler := handler.NewTransactionHandler(services.Transactions(), services.Exports())
		TransactionRouter(v1.Group("/transactions"), txnHandler)

		summaryHandler := handler.NewSummaryHandler(services.Summaries())
		SummaryRouter(v1.Group("/summary"), summaryHandler)
	}
}
