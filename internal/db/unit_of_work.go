package db

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/schooladmin/internal/pkg/dberrors"
	"github.com/yigit/schooladmin/internal/pkg/logger"
)

const (
	// DefaultTxTimeout bounds a unit of work started without a deadline
	DefaultTxTimeout = 30 * time.Second
	rollbackTimeout  = 5 * time.Second
)

// TxFn is a function that executes within a unit of work
type TxFn func(ctx context.Context, tx Executor) error

// RunInUnitOfWork opens a unit of work on store, runs fn inside it and
// commits. Any error, panic or caller cancellation before commit rolls the
// unit of work back before returning.
func RunInUnitOfWork(ctx context.Context, store Store, fn TxFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTxTimeout)
		defer cancel()
	}

	uow, err := store.Begin(ctx)
	if err != nil {
		return err
	}

	// Rollback must still reach the server when the caller's context is gone.
	rollback := func() error {
		rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
		defer cancel()
		return uow.Rollback(rbCtx)
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := rollback(); rbErr != nil {
				logger.Error().Err(rbErr).Msg("Failed to rollback transaction after panic")
			}
			panic(r)
		}
	}()

	if err := fn(ctx, uow); err != nil {
		if rbErr := rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, rbErr)
		}
		return err
	}

	// Abandoned before commit: nothing may become visible.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if rbErr := rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback abandoned transaction")
		}
		return dberrors.Translate(ctxErr)
	}

	if err := uow.Commit(ctx); err != nil {
		if rbErr := rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback after commit failure")
		}
		return err
	}

	return nil
}
