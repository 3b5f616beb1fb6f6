package feedback

import (
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
	r.POST("/feedback", h.Submit)
}

// Submit godoc
// @Summary Send feedback to the site team
// @Tags Feedback
// @Security BearerAuth
// @Param request body SubmitRequest true "Feedback message"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,500 {object} map[string]interface{}
// @Router /feedback [post]
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

	f, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "failed to submit feedback")
		return
	}

	response.Success(c, http.StatusCreated, f)
}
