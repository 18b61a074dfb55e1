package dberrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslateForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		TableName:      "students",
		ConstraintName: "students_institution_id_fkey",
	}

	err := Translate(fmt.Errorf("exec: %w", pgErr))

	require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))

	var violation *ConstraintViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, ForeignKey, violation.Kind)
	assert.Equal(t, "students", violation.Table)
	assert.Equal(t, "students_institution_id_fkey", violation.Constraint)

	var raw *pgconn.PgError
	assert.ErrorAs(t, err, &raw, "driver error stays reachable for logging")
}

func TestTranslateUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	err := Translate(pgErr)

	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsDuplicateConstraintError(err, "users_username_key"))
	assert.False(t, IsDuplicateConstraintError(err, "other"))
}

func TestTranslateOtherPgErrorIsStoreError(t *testing.T) {
	err := Translate(&pgconn.PgError{Code: "42P01"})

	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.NotErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestTranslateStatementTimeoutIsConnectionUnavailable(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"}

	err := Translate(fmt.Errorf("exec: %w", pgErr))

	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrStore)
	assert.False(t, IsForeignKeyViolation(err))
}

func TestTranslateNoRows(t *testing.T) {
	assert.ErrorIs(t, Translate(pgx.ErrNoRows), apperrors.ErrResourceNotFound)
}

func TestTranslateDeadlineIsConnectionUnavailable(t *testing.T) {
	err := Translate(fmt.Errorf("acquire: %w", context.DeadlineExceeded))

	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTranslateUnknownIsStoreError(t *testing.T) {
	err := Translate(errors.New("boom"))

	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.NotErrorIs(t, err, apperrors.ErrConnectionUnavailable)
}

func TestTranslateIsIdempotent(t *testing.T) {
	first := Translate(&pgconn.PgError{Code: "23503", TableName: "groups"})
	second := Translate(first)

	assert.Same(t, first, second)
}
