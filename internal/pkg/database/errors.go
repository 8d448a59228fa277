package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes translated by TranslateError.
const (
	UniqueViolationCode = "23505"
	CheckViolationCode  = "23514"
	NotNullViolation    = "23502"
	InvalidTextCode     = "22P02"
	StringTooLongCode   = "22001"
	NumericOverflowCode = "22003"
)

// DuplicateKeyError reports a unique index violation raised by the database.
type DuplicateKeyError struct {
	Field      string
	Constraint string
	Err        error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for field %s", e.Field)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// ConstraintError reports check, not-null, length or range violations raised
// by the database. Messages are human readable.
type ConstraintError struct {
	Messages []string
	Err      error
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + strings.Join(e.Messages, "; ")
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// TranslateError maps PostgreSQL integrity errors onto DuplicateKeyError and
// ConstraintError. fields maps constraint names to API field names. Other
// errors are returned unchanged.
func TranslateError(err error, fields map[string]string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolationCode:
		field, ok := fields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return &DuplicateKeyError{Field: field, Constraint: pgErr.ConstraintName, Err: err}
	case CheckViolationCode:
		msg := pgErr.ConstraintName
		if field, ok := fields[pgErr.ConstraintName]; ok {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		return &ConstraintError{Messages: []string{msg}, Err: err}
	case NotNullViolation:
		return &ConstraintError{Messages: []string{fmt.Sprintf("%s is required", pgErr.ColumnName)}, Err: err}
	case StringTooLongCode:
		return &ConstraintError{Messages: []string{columnMessage(pgErr.ColumnName, "is too long", "Value is too long")}, Err: err}
	case NumericOverflowCode:
		return &ConstraintError{Messages: []string{columnMessage(pgErr.ColumnName, "is out of range", "Numeric value is out of range")}, Err: err}
	default:
		return err
	}
}

// columnMessage names the column when PostgreSQL reports one.
func columnMessage(column, suffix, fallback string) string {
	if column == "" {
		return fallback
	}
	return column + " " + suffix
}

// IsInvalidInput reports whether err is a malformed literal, such as a bad uuid.
func IsInvalidInput(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == InvalidTextCode
}
