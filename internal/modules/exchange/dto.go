package exchange

import "time"

type CreateRequestRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Guests    int       `json:"guests" binding:"required,min=1"`
	Message   string    `json:"message"`
}
