package deletion

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

// Reject deletes the owner with a single statement and lets the store's
// foreign keys decide. When they refuse, it reports the label of every row
// still referencing the owner.
type Reject struct {
	Owner    Owner
	Blockers []Relation
}

// Name implements Strategy
func (r *Reject) Name() string { return "reject" }

// Delete implements Strategy
func (r *Reject) Delete(ctx context.Context, store db.Store, id int64) error {
	err := deleteOwner(ctx, store, r.Owner, id)
	if err == nil || !dberrors.IsForeignKeyViolation(err) {
		return err
	}

	labels, lookupErr := r.blockingLabels(ctx, store, id)
	if lookupErr != nil {
		return fmt.Errorf("error listing records blocking %s %d: %w", r.Owner.Kind, id, lookupErr)
	}

	// The references were removed between the delete and the lookup.
	if len(labels) == 0 {
		return apperrors.NewConflictError(fmt.Sprintf("%s %d changed while deleting, try again", r.Owner.Kind, id))
	}

	return apperrors.NewDeletionBlockedError(string(r.Owner.Kind), id, labels)
}

func (r *Reject) blockingLabels(ctx context.Context, store db.Executor, id int64) ([]string, error) {
	labels := []string{}
	for _, blocker := range r.Blockers {
		query, args, err := sb.Select(blocker.LabelColumn).
			From(blocker.Table).
			Where(squirrel.Eq{blocker.Column: id}).
			OrderBy(blocker.LabelColumn).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build blockers query for %s: %w", blocker.Table, err)
		}

		found, err := store.QueryStrings(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		labels = append(labels, found...)
	}
	return labels, nil
}
