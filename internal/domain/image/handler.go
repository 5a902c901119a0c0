package image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"templecms/internal/pkg/response"
)

// Handler handles image HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /api/v1/admin/images (protected, multipart).
// Form fields: file, entity_type (event|project), entity_id, alt (optional).
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	entityID, err := strconv.ParseInt(c.PostForm("entity_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY_ID", "entity_id must be an integer")
		return
	}

	owner, err := ParseOwner(c.PostForm("entity_type"), entityID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY_TYPE", "entity_type must be event or project")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	img, err := h.service.Upload(c.Request.Context(), userID, owner, fileHeader, c.PostForm("alt"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_MIME_TYPE", err.Error())
		case errors.Is(err, ErrOwnerNotFound):
			response.Error(c, http.StatusNotFound, "ENTITY_NOT_FOUND", "Owning entity not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, img)
}

// List handles GET /api/v1/images?entity_type=&entity_id= (public).
// Featured image first.
func (h *Handler) List(c *gin.Context) {
	entityID, err := strconv.ParseInt(c.Query("entity_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY_ID", "entity_id must be an integer")
		return
	}

	owner, err := ParseOwner(c.Query("entity_type"), entityID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ENTITY_TYPE", "entity_type must be event or project")
		return
	}

	images, err := h.service.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list images")
		return
	}

	response.Success(c, http.StatusOK, images)
}

// SetFeatured handles PATCH /api/v1/admin/images/:id/featured (protected)
func (h *Handler) SetFeatured(c *gin.Context) {
	img, err := h.service.SetFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			response.Error(c, http.StatusNotFound, "IMAGE_NOT_FOUND", "Image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to set featured image")
		return
	}

	response.Success(c, http.StatusOK, img)
}

// Delete handles DELETE /api/v1/admin/images/:id (protected)
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			response.Error(c, http.StatusNotFound, "IMAGE_NOT_FOUND", "Image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete image")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Image deleted"})
}
