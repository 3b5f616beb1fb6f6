package domain

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// UserVerification is an identity-verification submission: a document the
// member uploaded, waiting for an admin decision.
type UserVerification struct {
	ID           int64              `json:"id"`
	UserID       int64              `json:"user_id" gorm:"index"`
	DocumentType string             `json:"document_type"`
	DocumentURL  string             `json:"document_url"`
	Status       VerificationStatus `json:"status" gorm:"index"`
	ReviewedBy   *int64             `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time         `json:"reviewed_at,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (UserVerification) TableName() string { return "user_verifications" }
