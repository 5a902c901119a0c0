package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the marketing frontend and admin portal origins. Preflight
// requests finish here, before the auth middleware.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type", "Content-Length", "Authorization",
			"Accept", "Origin", "X-Requested-With",
		},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})
}
