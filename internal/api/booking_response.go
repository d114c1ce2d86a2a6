package api

import (
	"time"

	"slotbook/internal/model"
)

// swagger:model api.BookingResponse
type BookingResponse struct {
	ID          int        `json:"id" example:"1"`
	UserID      int        `json:"user_id" example:"1"`
	BookingDate string     `json:"booking_date" example:"10am-11am"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func NewBookingResponse(b *model.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
