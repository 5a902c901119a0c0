package image

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the unauthenticated read routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/images", h.List)
}

// RegisterAdminRoutes registers the authenticated write routes.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	images := r.Group("/images")
	{
		images.POST("", h.Upload)
		images.PATCH("/:id/featured", h.SetFeatured)
		images.DELETE("/:id", h.Delete)
	}
}
