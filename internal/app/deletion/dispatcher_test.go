package deletion

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

type observation struct {
	kind    string
	outcome string
}

type fakeRecorder struct {
	observed []observation
}

func (r *fakeRecorder) ObserveDeletion(kind, outcome string, start time.Time) {
	r.observed = append(r.observed, observation{kind: kind, outcome: outcome})
}

func newTestDispatcher() (*Dispatcher, *memStore, *fakeRecorder) {
	store := schoolFixture()
	recorder := &fakeRecorder{}
	return NewDispatcher(store, DefaultStrategies(), recorder, zerolog.Nop()), store, recorder
}

func TestDispatcherRoutesEachKind(t *testing.T) {
	tests := []struct {
		kind     EntityKind
		id       int64
		strategy string
		outcome  Outcome
	}{
		{KindStudent, 42, "cascade", OutcomeDeleted},
		{KindStaff, 7, "detach", OutcomeDeleted},
		{KindInstitution, 3, "reject", OutcomeBlocked},
		{KindGroup, 11, "reject", OutcomeDeleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			dispatcher, _, recorder := newTestDispatcher()

			result, err := dispatcher.Delete(context.Background(), tt.kind, tt.id)

			require.NotNil(t, result)
			assert.Equal(t, tt.kind, result.Kind)
			assert.Equal(t, tt.id, result.ID)
			assert.Equal(t, tt.strategy, result.Strategy)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.outcome == OutcomeDeleted, err == nil)
			assert.Equal(t, []observation{{kind: string(tt.kind), outcome: string(tt.outcome)}}, recorder.observed)
		})
	}
}

func TestDispatcherUnknownKind(t *testing.T) {
	dispatcher, _, recorder := newTestDispatcher()

	result, err := dispatcher.Delete(context.Background(), EntityKind("faculty"), 1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Empty(t, recorder.observed)
}

func TestDispatcherRejectsInvalidID(t *testing.T) {
	dispatcher, store, recorder := newTestDispatcher()

	for _, id := range []int64{0, -4} {
		result, err := dispatcher.Delete(context.Background(), KindStudent, id)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	assert.Empty(t, recorder.observed)
	assert.Empty(t, store.statements)
}

func TestDispatcherNotFound(t *testing.T) {
	dispatcher, _, recorder := newTestDispatcher()

	result, err := dispatcher.Delete(context.Background(), KindGroup, 404)

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	require.NotNil(t, result)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
	assert.Equal(t, "not_found", recorder.observed[0].outcome)
}

func TestNewDispatcherWithoutRecorder(t *testing.T) {
	dispatcher := NewDispatcher(schoolFixture(), DefaultStrategies(), nil, zerolog.Nop())

	_, err := dispatcher.Delete(context.Background(), KindInstitution, 5)

	assert.NoError(t, err)
}
