package api

// swagger:model api.CreateBookingRequest
type CreateBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"required,min=1,max=50" example:"10am-11am"`
	Status      string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled" example:"pending"`
}
