package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

type recordingUnit struct {
	committed      int
	rolledBack     int
	commitErr      error
	rollbackCtxErr error
}

func (u *recordingUnit) Exec(context.Context, string, ...any) (int64, error) { return 1, nil }

func (u *recordingUnit) QueryStrings(context.Context, string, ...any) ([]string, error) {
	return nil, nil
}

func (u *recordingUnit) Commit(context.Context) error {
	u.committed++
	return u.commitErr
}

func (u *recordingUnit) Rollback(ctx context.Context) error {
	u.rolledBack++
	u.rollbackCtxErr = ctx.Err()
	return nil
}

type recordingStore struct {
	unit     *recordingUnit
	beginErr error
}

func (s *recordingStore) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }

func (s *recordingStore) QueryStrings(context.Context, string, ...any) ([]string, error) {
	return nil, nil
}

func (s *recordingStore) Begin(context.Context) (UnitOfWork, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.unit, nil
}

func newRecordingStore() *recordingStore {
	return &recordingStore{unit: &recordingUnit{}}
}

func TestRunInUnitOfWorkCommitsOnSuccess(t *testing.T) {
	store := newRecordingStore()

	err := RunInUnitOfWork(context.Background(), store, func(ctx context.Context, tx Executor) error {
		_, err := tx.Exec(ctx, "DELETE FROM students WHERE id = $1", 1)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, store.unit.committed)
	assert.Equal(t, 0, store.unit.rolledBack)
}

func TestRunInUnitOfWorkRollsBackOnError(t *testing.T) {
	store := newRecordingStore()
	boom := errors.New("boom")

	err := RunInUnitOfWork(context.Background(), store, func(context.Context, Executor) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.unit.committed)
	assert.Equal(t, 1, store.unit.rolledBack)
}

func TestRunInUnitOfWorkRollsBackOnPanic(t *testing.T) {
	store := newRecordingStore()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = RunInUnitOfWork(context.Background(), store, func(context.Context, Executor) error {
			panic("kaboom")
		})
	})
	assert.Equal(t, 0, store.unit.committed)
	assert.Equal(t, 1, store.unit.rolledBack)
}

func TestRunInUnitOfWorkRollsBackWhenCallerCancels(t *testing.T) {
	store := newRecordingStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := RunInUnitOfWork(ctx, store, func(context.Context, Executor) error {
		cancel()
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.unit.committed)
	assert.Equal(t, 1, store.unit.rolledBack)
	assert.NoError(t, store.unit.rollbackCtxErr, "rollback runs on a live context")
}

func TestRunInUnitOfWorkDeadlineIsConnectionUnavailable(t *testing.T) {
	store := newRecordingStore()
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	err := RunInUnitOfWork(ctx, store, func(context.Context, Executor) error { return nil })

	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)
	assert.Equal(t, 0, store.unit.committed)
	assert.Equal(t, 1, store.unit.rolledBack)
}

func TestRunInUnitOfWorkCommitFailure(t *testing.T) {
	store := newRecordingStore()
	store.unit.commitErr = apperrors.ErrStore

	err := RunInUnitOfWork(context.Background(), store, func(context.Context, Executor) error { return nil })

	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.Equal(t, 1, store.unit.committed)
	assert.Equal(t, 1, store.unit.rolledBack)
}

func TestRunInUnitOfWorkBeginFailure(t *testing.T) {
	store := newRecordingStore()
	store.beginErr = apperrors.ErrConnectionUnavailable
	called := false

	err := RunInUnitOfWork(context.Background(), store, func(context.Context, Executor) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, apperrors.ErrConnectionUnavailable)
	assert.False(t, called)
}
