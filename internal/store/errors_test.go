package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolation(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
		constraint, ok := UniqueViolation(err)
		require.True(t, ok)
		require.Equal(t, "users_email_key", constraint)
	})

	t.Run("other pg error", func(t *testing.T) {
		_, ok := UniqueViolation(&pgconn.PgError{Code: "23503"})
		require.False(t, ok)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := UniqueViolation(errors.New("boom"))
		require.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := UniqueViolation(nil)
		require.False(t, ok)
	})
}
