package api

import "slotbook/internal/model"

// BookingWithOwnerResponse embeds the owner's public profile next to the
// booking. Admin-only views use it.
// swagger:model api.BookingWithOwnerResponse
type BookingWithOwnerResponse struct {
	BookingResponse
	User UserResponse `json:"user"`
}

func NewBookingWithOwnerResponse(bw *model.BookingWithOwner) BookingWithOwnerResponse {
	return BookingWithOwnerResponse{
		BookingResponse: NewBookingResponse(&bw.Booking),
		User:            NewUserResponse(&bw.Owner),
	}
}
