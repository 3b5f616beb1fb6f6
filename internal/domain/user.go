package domain

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type IdentityStatus string

const (
	IdentityNone     IdentityStatus = "none"
	IdentityPending  IdentityStatus = "pending"
	IdentityVerified IdentityStatus = "verified"
	IdentityRejected IdentityStatus = "rejected"
)

type User struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email" validate:"required,email"`
	PasswordHash   string         `json:"-"`
	Role           UserRole       `json:"role"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone,omitempty"`
	AvatarURL      string         `json:"avatar_url,omitempty"`
	IdentityStatus IdentityStatus `json:"identity_status,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (User) TableName() string { return "users" }
