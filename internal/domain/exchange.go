package domain

import "time"

type ExchangeStatus string

const (
	ExchangePending   ExchangeStatus = "pending"
	ExchangeAccepted  ExchangeStatus = "accepted"
	ExchangeDeclined  ExchangeStatus = "declined"
	ExchangeCancelled ExchangeStatus = "cancelled"
)

// ExchangeRequest is a member's request to stay at another member's property.
type ExchangeRequest struct {
	ID          int64          `json:"id"`
	PropertyID  int64          `json:"property_id" gorm:"index"`
	RequesterID int64          `json:"requester_id" gorm:"index"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Guests      int            `json:"guests"`
	Message     string         `json:"message,omitempty"`
	Status      ExchangeStatus `json:"status"`
	RespondedAt *time.Time     `json:"responded_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ExchangeRequest) TableName() string { return "exchange_requests" }
