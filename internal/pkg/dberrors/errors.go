package dberrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes we care about
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeQueryCanceled       = "57014"
)

// ConstraintKind tells which kind of constraint a statement violated
type ConstraintKind string

const (
	ForeignKey ConstraintKind = "foreign_key"
	Unique     ConstraintKind = "unique"
)

// ConstraintViolation carries the identity of the violated relationship.
// It matches apperrors.ErrConstraintViolation with errors.Is.
type ConstraintViolation struct {
	Kind       ConstraintKind
	Constraint string
	Table      string
	Err        error
}

// NewForeignKeyViolation builds a foreign key violation for the given table and constraint
func NewForeignKeyViolation(table, constraint string, cause error) *ConstraintViolation {
	return &ConstraintViolation{Kind: ForeignKey, Constraint: constraint, Table: table, Err: cause}
}

// Error implements error interface
func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s violation on %s (%s)", e.Kind, e.Table, e.Constraint)
}

// Unwrap exposes both the sentinel and the driver error
func (e *ConstraintViolation) Unwrap() []error {
	if e.Err == nil {
		return []error{apperrors.ErrConstraintViolation}
	}
	return []error{apperrors.ErrConstraintViolation, e.Err}
}

// StoreFailure wraps a driver error under one of the store sentinels
// (ErrConnectionUnavailable or ErrStore).
type StoreFailure struct {
	Kind error
	Err  error
}

// Error implements error interface
func (e *StoreFailure) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

// Unwrap exposes both the sentinel and the driver error
func (e *StoreFailure) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Translate maps a pgx error into the typed store taxonomy. A nil error stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var violation *ConstraintViolation
	var failure *StoreFailure
	if errors.As(err, &violation) || errors.As(err, &failure) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrResourceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return &ConstraintViolation{Kind: ForeignKey, Constraint: pgErr.ConstraintName, Table: pgErr.TableName, Err: err}
		case codeUniqueViolation:
			return &ConstraintViolation{Kind: Unique, Constraint: pgErr.ConstraintName, Table: pgErr.TableName, Err: err}
		case codeQueryCanceled:
			// statement_timeout or a cancel request sent when ctx expired
			return &StoreFailure{Kind: apperrors.ErrConnectionUnavailable, Err: err}
		}
		return &StoreFailure{Kind: apperrors.ErrStore, Err: err}
	}

	if IsConnectionError(err) {
		return &StoreFailure{Kind: apperrors.ErrConnectionUnavailable, Err: err}
	}

	return &StoreFailure{Kind: apperrors.ErrStore, Err: err}
}

// IsConnectionError reports whether err means the store could not be reached in time
func IsConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return pgconn.Timeout(err)
}

// IsForeignKeyViolation checks if err is a translated or raw foreign key violation
func IsForeignKeyViolation(err error) bool {
	var violation *ConstraintViolation
	if errors.As(err, &violation) {
		return violation.Kind == ForeignKey
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var violation *ConstraintViolation
	if errors.As(err, &violation) {
		return violation.Kind == Unique && violation.Constraint == constraintName
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if err is a unique violation on any constraint
func IsUniqueViolation(err error) bool {
	var violation *ConstraintViolation
	if errors.As(err, &violation) {
		return violation.Kind == Unique
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
