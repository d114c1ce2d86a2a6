package store

import (
	"context"
	"fmt"

	"slotbook/internal/database"
	"slotbook/internal/model"
)

// InsertAuditEntry records who did what to which record. Callers run this on
// the worker pool with a background context, off the request path.
func InsertAuditEntry(ctx context.Context, db database.DB, e *model.AuditEntry) error {
	_, err := db.Exec(ctx,
		`INSERT INTO audit_logs (actor_id, action, entity_type, entity_id)
		 VALUES ($1, $2, $3, $4)`,
		e.ActorID,
		e.Action,
		e.EntityType,
		e.EntityID,
	)
	if err != nil {
		return fmt.Errorf("InsertAuditEntry: %w", err)
	}
	return nil
}
