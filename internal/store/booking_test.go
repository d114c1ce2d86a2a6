package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"slotbook/internal/database"
	"slotbook/internal/model"
)

func sampleBooking() *model.Booking {
	return &model.Booking{
		ID:          1,
		UserID:      1,
		BookingDate: "10am-11am",
		Status:      model.BookingStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestGetBookingByID(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		b := sampleBooking()
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{booking: b}
			},
		}
		got, err := GetBookingByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, b.BookingDate, got.BookingDate)
		require.Equal(t, b.Status, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetBookingByID(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestListBookings(t *testing.T) {
	b := sampleBooking()

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{rows: []fakeRow{{booking: b}, {booking: b}}}, nil
			},
		}
		bookings, err := ListBookings(context.Background(), db, 0, 100)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListBookings(context.Background(), db, 0, 100)
		require.Error(t, err)
	})

	t.Run("scan err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{rows: []fakeRow{{booking: b}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListBookings(context.Background(), db, 0, 100)
		require.Error(t, err)
	})
}

func TestListBookingsByUser(t *testing.T) {
	b := sampleBooking()

	t.Run("filters in query", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, 42, args[0])
				require.Equal(t, 0, args[1])
				require.Equal(t, 100, args[2])
				return &fakeRows{rows: []fakeRow{{booking: b}}}, nil
			},
		}
		bookings, err := ListBookingsByUser(context.Background(), db, 42, 0, 100)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListBookingsByUser(context.Background(), db, 42, 0, 100)
		require.Error(t, err)
	})
}

func TestListBookingsWithOwners(t *testing.T) {
	b := sampleBooking()
	u := sampleUser()

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{rows: []fakeRow{{booking: b, user: u}}}, nil
			},
		}
		rows, err := ListBookingsWithOwners(context.Background(), db, 0, 100)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, b.ID, rows[0].ID)
		require.Equal(t, u.Username, rows[0].Owner.Username)
		require.Empty(t, rows[0].Owner.HashedPassword)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListBookingsWithOwners(context.Background(), db, 0, 100)
		require.Error(t, err)
	})

	t.Run("scan err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeRows{rows: []fakeRow{{booking: b, user: u}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListBookingsWithOwners(context.Background(), db, 0, 100)
		require.Error(t, err)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		b := sampleBooking()
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, b.UserID, args[0])
				require.Equal(t, b.BookingDate, args[1])
				return &fakeRow{booking: &model.Booking{ID: 9, CreatedAt: b.CreatedAt}}
			},
		}
		created, err := CreateBooking(context.Background(), db, b)
		require.NoError(t, err)
		require.Equal(t, 9, created.ID)
	})

	t.Run("err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("insert")}
			},
		}
		_, err := CreateBooking(context.Background(), db, sampleBooking())
		require.Error(t, err)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateBooking(context.Background(), db, sampleBooking()))
	})

	t.Run("no rows", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateBooking(context.Background(), db, sampleBooking())
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("exec err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, UpdateBooking(context.Background(), db, sampleBooking()))
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteBooking(context.Background(), db, 1))
	})

	t.Run("no rows", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		err := DeleteBooking(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
