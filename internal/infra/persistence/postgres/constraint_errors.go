package postgres

import (
	"database/sql/driver"
	"strings"

	"leadgrid/internal/domain/repository"
	"leadgrid/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, "not null")
}

// isTransientError reports failures that succeed on a retry: serialization
// conflicts, deadlocks and connections dropped before the statement was sent.
func isTransientError(err error) bool {
	switch pgErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	return pgconn.SafeToRetry(err)
}

// translateError wraps a storage error, tagging it with repository.ErrTransientStorage when retryable.
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if isTransientError(err) {
		return errors.Wrap(errors.Join(repository.ErrTransientStorage, err), msg)
	}

	return errors.Wrap(err, msg)
}
