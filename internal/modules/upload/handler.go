package upload

import (
	"errors"
	"net/http"

	"homeswap/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts upload routes under the protected group. Any
// authenticated user can upload; ownership is tracked by user_id.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.GET("/:id", h.GetByID)
		uploads.DELETE("/:id", h.Delete)
	}
}

// Upload godoc
// @Summary Upload a photo or document
// @Description Accepts JPEG, PNG, WebP and PDF. Returns file ID and public URL.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,413,500 {object} map[string]interface{}
// @Router /uploads [post]
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file provided")
		return
	}

	u, err := h.service.Save(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_ERROR", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, u)
}

// GetByID godoc
// @Summary Get upload metadata by ID
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /uploads/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Delete godoc
// @Summary Delete an upload (file and record)
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Upload ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403,404,500 {object} map[string]interface{}
// @Router /uploads/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, ErrUploadNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "you do not own this upload")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_ERROR", "delete failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

// ListMy godoc
// @Summary List my uploads
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /uploads [get]
func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	uploads, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list uploads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"uploads": uploads})
}
