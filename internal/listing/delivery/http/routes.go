package http

import (
	"github.com/gin-gonic/gin"

	"property-listing-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Mutation
// routes are rate-limited; reads are open.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.List)
		listings.GET("/search", h.Search)
		listings.GET("/featured", h.Featured)
		listings.GET("/:id", h.Detail)

		listings.POST("", mw.RateLimit(), h.Create)
		listings.PUT("/:id", mw.RateLimit(), h.Update)
		listings.DELETE("/:id", mw.RateLimit(), h.Delete)
	}

	rg.GET("/cities", h.Cities)
	rg.GET("/cities/:id/listings", h.ByCity)
	rg.GET("/property-types", h.PropertyTypes)
	rg.GET("/property-types/:id/listings", h.ByType)

	agents := rg.Group("/agents")
	{
		agents.GET("/:id/listings", h.ByAgent)
		agents.GET("/:id/listings/count", h.AgentActiveCount)
	}
}
