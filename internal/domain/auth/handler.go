package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"templecms/internal/pkg/response"
	"templecms/internal/pkg/validator"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	service *Service
	ttlSecs int64
}

func NewHandler(service *Service, ttlSecs int64) *Handler {
	return &Handler{service: service, ttlSecs: ttlSecs}
}

// Login handles POST /api/v1/auth/login (public)
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	// normalize before validation so a padded or mixed-case email passes
	// the email tag the same way the service matches it
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid login request", errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		User:        result.User,
		AccessToken: result.AccessToken,
		ExpiresIn:   h.ttlSecs,
		Callback:    SanitizeCallback(req.Callback),
	})
}

// Me handles GET /api/v1/auth/me (protected)
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Account no longer exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load account")
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout (protected).
// Sessions are stateless JWTs; the client discards the token.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Signed out"})
}
