package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"slotbook/internal/database"
	"slotbook/internal/model"
)

const bookingColumns = `id, user_id, booking_date, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.BookingDate,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func GetBookingByID(ctx context.Context, db database.DB, bookingID int) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		bookingID,
	)
	b, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("GetBookingByID: %w", err)
	}
	return b, nil
}

func ListBookings(ctx context.Context, db database.DB, skip, limit int) ([]*model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows, "ListBookings")
}

// ListBookingsByUser filters by owner in the query itself, not after the
// fact, so pagination counts only the caller's rows.
func ListBookingsByUser(ctx context.Context, db database.DB, userID, skip, limit int) ([]*model.Booking, error) {
	rows, err := db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3`,
		userID, skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookingsByUser: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows, "ListBookingsByUser")
}

func collectBookings(rows pgx.Rows, op string) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bookings, nil
}

// ListBookingsWithOwners joins each booking with the profile of its owner.
func ListBookingsWithOwners(ctx context.Context, db database.DB, skip, limit int) ([]*model.BookingWithOwner, error) {
	rows, err := db.Query(ctx,
		`SELECT b.id, b.user_id, b.booking_date, b.status, b.created_at, b.updated_at,
		        u.id, u.username, u.email, u.full_name, u.role, u.is_active, u.created_at, u.updated_at
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 ORDER BY b.id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListBookingsWithOwners: %w", err)
	}
	defer rows.Close()

	result := []*model.BookingWithOwner{}
	for rows.Next() {
		bw := &model.BookingWithOwner{}
		err := rows.Scan(
			&bw.ID,
			&bw.UserID,
			&bw.BookingDate,
			&bw.Status,
			&bw.CreatedAt,
			&bw.UpdatedAt,
			&bw.Owner.ID,
			&bw.Owner.Username,
			&bw.Owner.Email,
			&bw.Owner.FullName,
			&bw.Owner.Role,
			&bw.Owner.IsActive,
			&bw.Owner.CreatedAt,
			&bw.Owner.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ListBookingsWithOwners: %w", err)
		}
		result = append(result, bw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListBookingsWithOwners: %w", err)
	}
	return result, nil
}

func CreateBooking(ctx context.Context, db database.DB, b *model.Booking) (*model.Booking, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO bookings (user_id, booking_date, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		b.UserID,
		b.BookingDate,
		b.Status,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	return b, nil
}

func UpdateBooking(ctx context.Context, db database.DB, b *model.Booking) error {
	tag, err := db.Exec(ctx,
		`UPDATE bookings
		 SET booking_date = $1, status = $2, updated_at = $3
		 WHERE id = $4`,
		b.BookingDate,
		b.Status,
		b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateBooking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateBooking: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteBooking(ctx context.Context, db database.DB, bookingID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM bookings WHERE id = $1`,
		bookingID,
	)
	if err != nil {
		return fmt.Errorf("DeleteBooking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteBooking: %w", pgx.ErrNoRows)
	}
	return nil
}
