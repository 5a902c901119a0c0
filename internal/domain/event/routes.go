package event

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the unauthenticated read routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	events := r.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Get)
	}
}

// RegisterAdminRoutes registers the authenticated write routes.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	events := r.Group("/events")
	{
		events.POST("", h.Create)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
	}
}
