package api

// UpdateBookingRequest carries partial updates: nil fields are left untouched.
// swagger:model api.UpdateBookingRequest
type UpdateBookingRequest struct {
	BookingDate *string `json:"booking_date" validate:"omitempty,min=1,max=50" example:"2pm-3pm"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled" example:"confirmed"`
}
