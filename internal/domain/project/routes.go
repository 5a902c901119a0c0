package project

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the unauthenticated read routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
	}
}

// RegisterAdminRoutes registers the authenticated write routes.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	projects := r.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.PATCH("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}
