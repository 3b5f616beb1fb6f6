package domain

import "time"

type InboxType string

const (
	InboxUserVerification     InboxType = "user_verification"
	InboxPropertyVerification InboxType = "property_verification"
	InboxFeedback             InboxType = "feedback"
)

type InboxStatus string

const (
	InboxUnread  InboxStatus = "unread"
	InboxApprove InboxStatus = "approve"
	InboxDeny    InboxStatus = "deny"
)

type InboxEvent string

const (
	EventUpload   InboxEvent = "upload"
	EventVerify   InboxEvent = "verify"
	EventFeedback InboxEvent = "feedback"
)

// InboxItem is one unit of moderation work. It is a derived index over a
// domain row (property, verification or feedback); the referenced row stays
// authoritative. Status moves from unread to approve/deny exactly once.
type InboxItem struct {
	ID        int64       `json:"id"`
	Type      InboxType   `json:"type" gorm:"index"`
	Status    InboxStatus `json:"status" gorm:"index"`
	EventType InboxEvent  `json:"event_type"`

	// Pointer to the authoritative row. The row may be deleted later
	// without the item being cleaned up, so lookups must tolerate a miss.
	ReferenceID    string `json:"reference_id"`
	ReferenceTable string `json:"reference_table"`

	// Sender snapshot taken at creation time so the queue renders
	// without a join.
	SenderID    int64  `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`

	ReviewedBy *int64     `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote *string    `json:"review_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InboxItem) TableName() string { return "inbox_items" }

func (i *InboxItem) IsResolved() bool {
	return i.Status != InboxUnread
}
