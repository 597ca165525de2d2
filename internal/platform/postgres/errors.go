package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/ncnews/internal/store"
)

// PostgreSQL error codes recognized by the error mapper.
const (
	// invalidTextRepresentationCode covers values that cannot be coerced to
	// the column type, e.g. a non-numeric string bound to an integer column.
	invalidTextRepresentationCode = "22P02"

	// notNullViolationCode is the PostgreSQL error code for not null violations.
	notNullViolationCode = "23502"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations.
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
	uniqueViolationCode = "23505"
)

// MapError maps a database error to the appropriate store sentinel error.
// It wraps the original error to preserve context for logging. Every
// database operation in this package routes its errors through here so that
// classification is consistent:
//
//   - no rows                      -> store.ErrNotFound
//   - invalid text representation  -> store.ErrInvalidInput (surfaces as 400)
//   - not null violation           -> store.ErrInvalidInput (surfaces as 400)
//   - foreign key violation        -> store.ErrNotFound     (surfaces as 404)
//   - unique violation             -> store.ErrDuplicate    (surfaces as 409)
//
// Anything else is returned unchanged for the delivery layer to treat as an
// internal error.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: invalid text representation: %v", store.ErrInvalidInput, err)
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v", store.ErrInvalidInput, pgErr.ColumnName, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v", store.ErrNotFound, pgErr.ConstraintName, err)
		case uniqueViolationCode:
			return fmt.Errorf("%w: unique violation (%s): %v", store.ErrDuplicate, pgErr.ConstraintName, err)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation. Used to substitute entity-specific duplicate errors
// where the store knows which constraint is in play.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// checkRowsAffected examines the number of rows affected by an UPDATE or
// DELETE. Zero rows affected means the target row does not exist, so the
// provided not-found sentinel is returned.
func checkRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
