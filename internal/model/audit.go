// File: internal/model/audit.go
package model

import "time"

type AuditEntry struct {
	ID         int       `db:"id" json:"id"`
	ActorID    int       `db:"actor_id" json:"actor_id"`
	Action     string    `db:"action" json:"action"`
	EntityType string    `db:"entity_type" json:"entity_type"`
	EntityID   int       `db:"entity_id" json:"entity_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
