package notification

import (
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
	r.GET("/my/notifications", h.List)
	r.POST("/my/notifications/read-all", h.MarkAllRead)
	r.POST("/my/notifications/:id/read", h.MarkRead)
}

// List godoc
// @Summary List my notifications
// @Tags Notifications
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {object} map[string]interface{}
// @Router /my/notifications [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := h.service.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list notifications")
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to count notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", "failed to mark notification as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "notification marked as read"})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", "failed to mark notifications as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "all notifications marked as read"})
}
