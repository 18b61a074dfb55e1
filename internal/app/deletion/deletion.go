// Package deletion removes owner entities while keeping foreign-key
// relationships intact. Each entity kind is bound to one strategy: cascade
// (delete owned rows first), detach (null out references) or reject (refuse
// and report who is still pointing at the owner).
package deletion

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// EntityKind names an owner entity that can be deleted
type EntityKind string

const (
	KindStudent     EntityKind = "student"
	KindStaff       EntityKind = "staff"
	KindInstitution EntityKind = "institution"
	KindGroup       EntityKind = "group"
)

// Owner identifies the row a deletion targets
type Owner struct {
	Kind     EntityKind
	Table    string
	IDColumn string
}

// Relation is a set of rows in Table whose Column holds the owner id.
// LabelColumn is only used by the reject strategy to report blockers.
type Relation struct {
	Table       string
	Column      string
	LabelColumn string
}

// Strategy deletes one owner row and resolves its relationships
type Strategy interface {
	Name() string
	Delete(ctx context.Context, store db.Store, id int64) error
}

// Outcome is the machine-readable result of a deletion, used for logs and metrics
type Outcome string

const (
	OutcomeDeleted     Outcome = "deleted"
	OutcomeBlocked     Outcome = "blocked"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeConflict    Outcome = "conflict"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeStoreError  Outcome = "store_error"
)

// OutcomeOf classifies an error returned by a Strategy
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeDeleted
	case errors.Is(err, apperrors.ErrDeletionBlocked):
		return OutcomeBlocked
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrConstraintViolation):
		return OutcomeConflict
	case errors.Is(err, apperrors.ErrConnectionUnavailable):
		return OutcomeUnavailable
	default:
		return OutcomeStoreError
	}
}

// Result describes a completed deletion request
type Result struct {
	Kind     EntityKind
	ID       int64
	Strategy string
	Outcome  Outcome
}

var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func notFound(owner Owner, id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", owner.Kind, id))
}

// deleteOwner removes the owner row and reports NotFound when nothing matched
func deleteOwner(ctx context.Context, exec db.Executor, owner Owner, id int64) error {
	query, args, err := sb.Delete(owner.Table).Where(squirrel.Eq{owner.IDColumn: id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete %s query: %w", owner.Kind, err)
	}

	affected, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(owner, id)
	}
	return nil
}
