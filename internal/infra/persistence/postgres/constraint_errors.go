package postgres

import (
	"strings"

	"pulse/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes for donor row writes.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

// isNotNullConstraintViolation reports a donor row missing a required column.
func isNotNullConstraintViolation(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == sqlStateNotNullViolation
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "not null") || strings.Contains(msg, sqlStateNotNullViolation)
}

// isCheckConstraintViolation reports a donor row rejected by a CHECK, such as
// the latitude and longitude range checks.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	if code, ok := sqlState(err); ok {
		return code == sqlStateCheckViolation
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}

// sqlState extracts the SQLSTATE when the driver error is still in the chain.
func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	return pgErr.Code, true
}
