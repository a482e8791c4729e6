package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names the business layer discriminates on. Two different
// uniqueness violations can happen during conversion: a tracking code
// collision (retry with fresh randomness) and a concurrent duplicate
// conversion (re-read the winner).
const (
	ConstraintTrackingCode = "shipments_tracking_id_key"
	ConstraintPickupRef    = "shipments_pickup_id_key"
)

// IsDuplicate - signals that the error is a duplicate key violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsDuplicateOf reports whether err is a duplicate key violation of the named
// unique constraint.
func IsDuplicateOf(err error, constraint string) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505" && pgerr.ConstraintName == constraint
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
