package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the unauthenticated sign-in route.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers session routes behind the auth middleware.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/auth/me", h.Me)
	r.POST("/auth/logout", h.Logout)
}
