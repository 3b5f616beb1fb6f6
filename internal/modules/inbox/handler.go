package inbox

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"homeswap/internal/domain"
	"homeswap/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes mounts the moderation queue API. The caller passes a group
// that is already behind Auth + AdminOnly middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	inbox := admin.Group("/inbox")
	{
		inbox.GET("", h.List)
		inbox.GET("/stats", h.Stats)
		inbox.GET("/ws", h.Stream)
		inbox.GET("/:id", h.GetItem)
		inbox.POST("", h.CreateItem)
		inbox.POST("/review", h.BulkReview)
		inbox.POST("/:id/review", h.ReviewItem)
	}
}

// List godoc
// @Summary List inbox items
// @Description Filtered, sorted, paginated read of the moderation queue.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Param type query string false "user_verification | property_verification | feedback"
// @Param status query string false "unread | approve | deny"
// @Param sort_by query string false "created_at (default) | reviewed_at | status | type"
// @Param sort_dir query string false "desc (default) | asc"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,500 {object} map[string]interface{}
// @Router /admin/inbox [get]
func (h *Handler) List(c *gin.Context) {
	var f ListFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	res, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to list inbox items")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Stats godoc
// @Summary Inbox aggregate counts
// @Description Counts by status and type plus items resolved today.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,500 {object} map[string]interface{}
// @Router /admin/inbox/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to compute inbox stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetItem godoc
// @Summary One inbox item with joined detail
// @Description Returns the item plus the referenced domain row (property, verification or feedback).
// @Tags Admin - Inbox
// @Security BearerAuth
// @Param id path int true "Inbox item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /admin/inbox/{id} [get]
func (h *Handler) GetItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inbox item ID")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inbox item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to load inbox item")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// CreateItem godoc
// @Summary Create an inbox item manually
// @Description System-triggered creation path; the reference must resolve to an existing record.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item to enqueue"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,403,500 {object} map[string]interface{}
// @Router /admin/inbox [post]
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	item := &domain.InboxItem{
		Type:           domain.InboxType(req.Type),
		EventType:      domain.InboxEvent(req.EventType),
		ReferenceID:    req.ReferenceID,
		ReferenceTable: req.ReferenceTable,
		SenderID:       req.SenderID,
		SenderName:     req.SenderName,
		SenderEmail:    req.SenderEmail,
	}

	if err := h.service.CreateItem(c.Request.Context(), item); err != nil {
		switch {
		case errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidReference):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_ERROR", "failed to create inbox item")
		}
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// ReviewItem godoc
// @Summary Approve or deny one inbox item
// @Description Resolves the item and mirrors the decision onto the referenced record in one transaction.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Param id path int true "Inbox item ID"
// @Param request body ReviewRequest true "Decision (approve|deny) and optional note"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409,500 {object} map[string]interface{}
// @Router /admin/inbox/{id}/review [post]
func (h *Handler) ReviewItem(c *gin.Context) {
	adminID := c.GetInt64("user_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inbox item ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	log.Printf("admin action: ReviewInboxItem admin_id=%d item_id=%d action=%s", adminID, id, req.Action)

	item, err := h.service.Review(c.Request.Context(), id, adminID, req.Action, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REVIEW_ERROR", "failed to review inbox item")
		}
		return
	}

	response.Success(c, http.StatusOK, item)
}

// BulkReview godoc
// @Summary Approve or deny a set of inbox items
// @Description Applies one decision to many items; each id is resolved independently.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Param request body BulkReviewRequest true "Item ids, decision and optional note"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,500 {object} map[string]interface{}
// @Router /admin/inbox/review [post]
func (h *Handler) BulkReview(c *gin.Context) {
	adminID := c.GetInt64("user_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	log.Printf("admin action: BulkReviewInbox admin_id=%d count=%d action=%s", adminID, len(req.IDs), req.Action)

	results, err := h.service.BulkReview(c.Request.Context(), req.IDs, adminID, req.Action, req.Note)
	if err != nil {
		if errors.Is(err, ErrInvalidAction) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "REVIEW_ERROR", "bulk review failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// Stream godoc
// @Summary Live inbox event stream
// @Description WebSocket pushing item_created / item_reviewed events for dashboard refresh.
// @Tags Admin - Inbox
// @Security BearerAuth
// @Router /admin/inbox/ws [get]
func (h *Handler) Stream(c *gin.Context) {
	adminID := c.GetInt64("user_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	h.hub.ServeWS(c.Writer, c.Request, adminID)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
