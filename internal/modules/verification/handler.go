package verification

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/verifications", h.Submit)
	r.GET("/my/verifications", h.ListMine)
}

// Submit godoc
// @Summary Submit an identity document for verification
// @Tags Verifications
// @Security BearerAuth
// @Param request body SubmitRequest true "Document type and uploaded document URL"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,409,500 {object} map[string]interface{}
// @Router /verifications [post]
func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	v, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrAlreadyPending) {
			response.Error(c, http.StatusConflict, "ALREADY_PENDING", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "failed to submit verification")
		return
	}

	response.Success(c, http.StatusCreated, v)
}

// ListMine godoc
// @Summary List my verification submissions
// @Tags Verifications
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /my/verifications [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list verifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"verifications": list})
}
