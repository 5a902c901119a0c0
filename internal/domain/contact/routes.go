package contact

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public contact form route.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/contact", h.Submit)
}

// RegisterAdminRoutes registers the admin triage routes.
func RegisterAdminRoutes(r *gin.RouterGroup, h *Handler) {
	messages := r.Group("/contact")
	{
		messages.GET("", h.List)
		messages.GET("/:id", h.Get)
		messages.PATCH("/:id/status", h.UpdateStatus)
	}
}
