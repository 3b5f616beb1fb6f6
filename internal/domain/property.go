package domain

import "time"

type PropertyStatus string

const (
	PropertyDraft    PropertyStatus = "draft"
	PropertyPending  PropertyStatus = "pending"
	PropertyApproved PropertyStatus = "approved"
	PropertyRejected PropertyStatus = "rejected"
)

type Property struct {
	ID          int64    `json:"id"`
	OwnerID     int64    `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Address     string   `json:"address,omitempty"`
	MaxGuests   int      `json:"max_guests"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Photos      []string `json:"photos,omitempty" gorm:"type:json;serializer:json"`
	Amenities   []string `json:"amenities,omitempty" gorm:"type:json;serializer:json"`

	VerificationStatus PropertyStatus `json:"verification_status"`
	ReviewedBy         *int64         `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time     `json:"reviewed_at,omitempty"`
	ReviewComment      string         `json:"review_comment,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

func (Property) TableName() string { return "properties" }

// IsEditable reports whether the owner may still change the listing.
// Pending and approved listings are frozen until an admin acts.
func (p *Property) IsEditable() bool {
	return p.VerificationStatus == PropertyDraft || p.VerificationStatus == PropertyRejected
}
