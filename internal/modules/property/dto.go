package property

import "homeswap/internal/domain"

type CreatePropertyRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Country     string   `json:"country"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	MaxGuests   int      `json:"max_guests"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Photos      []string `json:"photos"`
	Amenities   []string `json:"amenities"`
	IsDraft     bool     `json:"is_draft"`
}

type UpdatePropertyRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Country     *string   `json:"country,omitempty"`
	City        *string   `json:"city,omitempty"`
	Address     *string   `json:"address,omitempty"`
	MaxGuests   *int      `json:"max_guests,omitempty"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`
	Photos      *[]string `json:"photos,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

type BrowseFilter struct {
	Country string `form:"country"`
	City    string `form:"city"`
	Guests  int    `form:"guests"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

type ListResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
