package routes

import (
	"net/http"

	"pawmatch_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.PetHandler.RegisterRoutes(api)
		appHandlers.CaregiverHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.BookingHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}
}
