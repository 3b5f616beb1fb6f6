package exchange

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/properties/:id/exchange-requests", h.Create)
	r.GET("/my/exchange-requests", h.ListSent)
	r.GET("/my/exchange-requests/received", h.ListReceived)
	r.POST("/exchange-requests/:id/accept", h.Accept)
	r.POST("/exchange-requests/:id/decline", h.Decline)
	r.POST("/exchange-requests/:id/cancel", h.Cancel)
}

// Create godoc
// @Summary Request a stay at a listing
// @Tags Exchange
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body CreateRequestRequest true "Stay dates, guest count, message"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,404,409 {object} map[string]interface{}
// @Router /properties/{id}/exchange-requests [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	propertyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	r, err := h.service.Create(c.Request.Context(), userID, propertyID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

// ListSent godoc
// @Summary List stay requests I sent
// @Tags Exchange
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /my/exchange-requests [get]
func (h *Handler) ListSent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.service.ListSent(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": list})
}

// ListReceived godoc
// @Summary List stay requests for my listings
// @Tags Exchange
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /my/exchange-requests/received [get]
func (h *Handler) ListReceived(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.service.ListReceived(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": list})
}

func (h *Handler) Accept(c *gin.Context)  { h.respond(c, true) }
func (h *Handler) Decline(c *gin.Context) { h.respond(c, false) }

func (h *Handler) respond(c *gin.Context, accept bool) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	r, err := h.service.Respond(c.Request.Context(), userID, id, accept)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

// Cancel godoc
// @Summary Withdraw a pending stay request
// @Tags Exchange
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /exchange-requests/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrTooManyGuests):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrRequestNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotAllowed), errors.Is(err, ErrOwnProperty):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrNotBookable), errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "operation failed")
	}
}
