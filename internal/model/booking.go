// File: internal/model/booking.go
package model

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          int           `db:"id" json:"id"`
	UserID      int           `db:"user_id" json:"user_id"`
	BookingDate string        `db:"booking_date" json:"booking_date"`
	Status      BookingStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time    `db:"updated_at" json:"updated_at"`
}

// BookingWithOwner pairs a booking with the profile of the user it belongs to.
type BookingWithOwner struct {
	Booking
	Owner User
}
