package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"slotbook/internal/database"
	"slotbook/internal/model"
)

func TestInsertAuditEntry(t *testing.T) {
	entry := &model.AuditEntry{
		ActorID:    1,
		Action:     "user.delete",
		EntityType: "user",
		EntityID:   2,
	}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, 1, args[0])
				require.Equal(t, "user.delete", args[1])
				require.Equal(t, "user", args[2])
				require.Equal(t, 2, args[3])
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
		}
		require.NoError(t, InsertAuditEntry(context.Background(), db, entry))
	})

	t.Run("exec err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("exec")
			},
		}
		require.Error(t, InsertAuditEntry(context.Background(), db, entry))
	})
}
