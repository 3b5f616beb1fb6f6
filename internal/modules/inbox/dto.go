package inbox

import "homeswap/internal/domain"

type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
	Note   string `json:"note"`
}

type BulkReviewRequest struct {
	IDs    []int64 `json:"ids" binding:"required,min=1"`
	Action string  `json:"action" binding:"required"`
	Note   string  `json:"note"`
}

type CreateItemRequest struct {
	Type           string `json:"type" binding:"required"`
	EventType      string `json:"event_type" binding:"required"`
	ReferenceID    string `json:"reference_id" binding:"required"`
	ReferenceTable string `json:"reference_table" binding:"required"`
	SenderID       int64  `json:"sender_id" binding:"required"`
	SenderName     string `json:"sender_name"`
	SenderEmail    string `json:"sender_email"`
}

// ListFilter narrows and pages the queue. Empty strings mean "any".
type ListFilter struct {
	Type     string `form:"type"`
	Status   string `form:"status"`
	SortBy   string `form:"sort_by"`
	SortDir  string `form:"sort_dir"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ListResponse struct {
	Items    []domain.InboxItem `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	HasMore  bool               `json:"has_more"`
}

type StatsResponse struct {
	Unread                int64 `json:"unread"`
	Approved              int64 `json:"approved"`
	Denied                int64 `json:"denied"`
	UserVerifications     int64 `json:"user_verifications"`
	PropertyVerifications int64 `json:"property_verifications"`
	Feedbacks             int64 `json:"feedbacks"`
	TodayActions          int64 `json:"today_actions"`
}

// ItemDetail pairs an item with its referenced domain row. Detail is a
// per-type payload resolved from reference_table; ReferenceMissing is set
// when the row has since been deleted.
type ItemDetail struct {
	Item             domain.InboxItem `json:"item"`
	Detail           any              `json:"detail,omitempty"`
	ReferenceMissing bool             `json:"reference_missing,omitempty"`
}

// BulkResult reports the outcome for one id of a bulk review. Status is
// "resolved", "conflict", "not_found" or "error".
type BulkResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
