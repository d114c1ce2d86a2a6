package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation reports whether err is a postgres unique-constraint
// violation (23505) and, if so, which constraint fired. Racing inserts are
// arbitrated by the constraint itself, so this is the only conflict signal
// the store emits.
func UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
