package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/health", h.Health)

	// Catalog routes
	rg.GET("/products", h.GetProducts)
	rg.GET("/categories", h.GetCategories)

	// Search session routes
	searchGroup := rg.Group("/search")
	{
		searchGroup.POST("", h.Search)
		searchGroup.GET("", h.GetSession)
		searchGroup.PUT("/filters", h.UpdateFilters)
		searchGroup.DELETE("", h.ResetSession)
	}

	// Image proxy for the front-end
	rg.GET("/proxy", h.ProxyImage)
}
