package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

// Executor runs parameterized statements. Errors are already translated by
// dberrors, so callers match on apperrors sentinels only.
type Executor interface {
	// Exec runs a mutation and returns the number of rows it affected.
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
	// QueryStrings runs a single-column read and returns every value.
	QueryStrings(ctx context.Context, sql string, args ...any) ([]string, error)
}

// UnitOfWork is one open transaction. Exactly one of Commit or Rollback must
// be called before it is dropped.
type UnitOfWork interface {
	Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store hands out units of work and runs standalone statements.
type Store interface {
	Executor
	Begin(ctx context.Context) (UnitOfWork, error)
}

// querier is the part of pgxpool.Pool and pgx.Tx the store needs
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore implements Store on top of a pgx pool
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Exec runs a standalone statement in its own implicit transaction
func (s *PostgresStore) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execWith(ctx, s.pool, sql, args...)
}

// QueryStrings runs a standalone single-column read
func (s *PostgresStore) QueryStrings(ctx context.Context, sql string, args ...any) ([]string, error) {
	return queryStringsWith(ctx, s.pool, sql, args...)
}

// Begin acquires a pooled connection and opens a transaction on it
func (s *PostgresStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", dberrors.Translate(err))
	}
	return &pgxUnitOfWork{tx: tx}, nil
}

// pgxUnitOfWork implements UnitOfWork with a pgx transaction
type pgxUnitOfWork struct {
	tx pgx.Tx
}

func (u *pgxUnitOfWork) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execWith(ctx, u.tx, sql, args...)
}

func (u *pgxUnitOfWork) QueryStrings(ctx context.Context, sql string, args ...any) ([]string, error) {
	return queryStringsWith(ctx, u.tx, sql, args...)
}

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", dberrors.Translate(err))
	}
	return nil
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	// pgx returns ErrTxClosed when the transaction already ended; that is not a failure here
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", dberrors.Translate(err))
	}
	return nil
}

func execWith(ctx context.Context, q querier, sql string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, dberrors.Translate(err)
	}
	return tag.RowsAffected(), nil
}

func queryStringsWith(ctx context.Context, q querier, sql string, args ...any) ([]string, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberrors.Translate(err)
	}
	return values, nil
}
