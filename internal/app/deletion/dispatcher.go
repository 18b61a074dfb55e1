package deletion

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// Recorder receives one observation per deletion request
type Recorder interface {
	ObserveDeletion(kind string, outcome string, start time.Time)
}

type noopRecorder struct{}

func (noopRecorder) ObserveDeletion(string, string, time.Time) {}

// DefaultStrategies is the static table binding every owner kind to its
// strategy. Adding a kind means adding an entry here.
func DefaultStrategies() map[EntityKind]Strategy {
	return map[EntityKind]Strategy{
		KindStudent: &Cascade{
			Owner: Owner{Kind: KindStudent, Table: "students", IDColumn: "id"},
			Dependents: []Relation{
				{Table: "student_disabilities", Column: "student_id"},
				{Table: "student_special_needs", Column: "student_id"},
				{Table: "specialist_attentions", Column: "student_id"},
			},
		},
		KindStaff: &Detach{
			Owner: Owner{Kind: KindStaff, Table: "staff", IDColumn: "id"},
			References: []Relation{
				{Table: "groups", Column: "teacher_id"},
				{Table: "students", Column: "teacher_id"},
			},
		},
		KindInstitution: &Reject{
			Owner: Owner{Kind: KindInstitution, Table: "institutions", IDColumn: "id"},
			Blockers: []Relation{
				{Table: "students", Column: "institution_id", LabelColumn: "full_name"},
				{Table: "staff", Column: "institution_id", LabelColumn: "full_name"},
			},
		},
		KindGroup: &Reject{
			Owner: Owner{Kind: KindGroup, Table: "groups", IDColumn: "id"},
			Blockers: []Relation{
				{Table: "students", Column: "group_id", LabelColumn: "full_name"},
			},
		},
	}
}

// Dispatcher routes a delete request to the strategy configured for its kind
type Dispatcher struct {
	store      db.Store
	strategies map[EntityKind]Strategy
	recorder   Recorder
	logger     zerolog.Logger
}

// NewDispatcher creates a Dispatcher. A nil recorder disables metrics.
func NewDispatcher(store db.Store, strategies map[EntityKind]Strategy, recorder Recorder, logger zerolog.Logger) *Dispatcher {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Dispatcher{
		store:      store,
		strategies: strategies,
		recorder:   recorder,
		logger:     logger.With().Str("component", "deletion").Logger(),
	}
}

// Delete removes the owner identified by kind and id. The returned Result is
// set whenever a strategy ran, including when it failed.
func (d *Dispatcher) Delete(ctx context.Context, kind EntityKind, id int64) (*Result, error) {
	strategy, ok := d.strategies[kind]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("entity kind %q cannot be deleted", kind))
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s ID", apperrors.ErrValidationFailed, kind)
	}

	start := time.Now()
	err := strategy.Delete(ctx, d.store, id)
	outcome := OutcomeOf(err)
	d.recorder.ObserveDeletion(string(kind), string(outcome), start)

	event := d.logger.Info()
	switch outcome {
	case OutcomeDeleted, OutcomeNotFound, OutcomeBlocked, OutcomeConflict:
	default:
		event = d.logger.Error().Err(err)
	}
	event.
		Str("entity", string(kind)).
		Int64("id", id).
		Str("strategy", strategy.Name()).
		Str("outcome", string(outcome)).
		Dur("duration", time.Since(start)).
		Msg("Deletion finished")

	return &Result{
		Kind:     kind,
		ID:       id,
		Strategy: strategy.Name(),
		Outcome:  outcome,
	}, err
}
