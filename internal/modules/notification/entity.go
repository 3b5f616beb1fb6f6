package notification

import "time"

// Type classifies a notification for client-side rendering.
type Type string

const (
	TypeSubmissionApproved Type = "submission_approved"
	TypeSubmissionDenied   Type = "submission_denied"
	TypeExchangeAccepted   Type = "exchange_accepted"
	TypeExchangeDeclined   Type = "exchange_declined"
)

type Notification struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id" gorm:"index"`
	Type      Type       `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
