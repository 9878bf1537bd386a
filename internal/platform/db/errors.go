package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound signals a lookup or update against an absent row.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a unique business key violation.
	ErrConflict = errors.New("conflict")
)

const pgUniqueViolation = "23505"

// MapError translates driver-level failures into the store error
// contract. Anything that is neither a missing row nor a uniqueness
// violation stays a generic storage error.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	return err
}
