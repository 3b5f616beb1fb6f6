package property

import (
	"errors"
	"net/http"
	"strconv"

	"homeswap/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated catalog.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/properties", h.Browse)
}

// RegisterRoutes mounts the member routes (behind Auth middleware).
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/properties", h.Submit)
	r.GET("/properties/:id", h.GetByID)
	r.PUT("/properties/:id", h.Update)
	r.DELETE("/properties/:id", h.Delete)
	r.POST("/properties/:id/submit", h.SubmitDraft)
	r.GET("/my/properties", h.ListMine)
}

// Browse godoc
// @Summary Browse approved listings
// @Tags Properties
// @Param country query string false "Country filter"
// @Param city query string false "City filter"
// @Param guests query int false "Minimum guest capacity"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /properties [get]
func (h *Handler) Browse(c *gin.Context) {
	var f BrowseFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res, err := h.service.ListPublic(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Submit godoc
// @Summary Submit a property listing
// @Description With is_draft=true the listing is stored without validation and not sent to moderation.
// @Tags Properties
// @Security BearerAuth
// @Param request body CreatePropertyRequest true "Listing payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,500 {object} map[string]interface{}
// @Router /properties [post]
func (h *Handler) Submit(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Submit(c.Request.Context(), ownerID, req)
	if err != nil {
		var missing *MissingFieldError
		if errors.As(err, &missing) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", missing.Error(),
				gin.H{"field": missing.Field})
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "failed to create property")
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// SubmitDraft godoc
// @Summary Submit a draft listing for review
// @Tags Properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /properties/{id}/submit [post]
func (h *Handler) SubmitDraft(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.SubmitDraft(c.Request.Context(), ownerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// GetByID godoc
// @Summary Get one listing
// @Tags Properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ListMine godoc
// @Summary List my listings (all statuses)
// @Tags Properties
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /my/properties [get]
func (h *Handler) ListMine(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	props, err := h.service.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": props})
}

// Update godoc
// @Summary Edit a draft or rejected listing
// @Tags Properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /properties/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete godoc
// @Summary Remove a listing
// @Tags Properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /properties/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var missing *MissingFieldError
	switch {
	case errors.As(err, &missing):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", missing.Error(),
			gin.H{"field": missing.Field})
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrNotEditable), errors.Is(err, ErrAlreadySubmitted):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "operation failed")
	}
}
