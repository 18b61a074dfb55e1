package deletion

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schooladmin/internal/db"
)

// Detach clears every reference to the owner, then deletes it. Referencing
// rows survive with their pointer set to NULL.
type Detach struct {
	Owner      Owner
	References []Relation
}

// Name implements Strategy
func (d *Detach) Name() string { return "detach" }

// Delete implements Strategy
func (d *Detach) Delete(ctx context.Context, store db.Store, id int64) error {
	return db.RunInUnitOfWork(ctx, store, func(ctx context.Context, tx db.Executor) error {
		for _, ref := range d.References {
			query, args, err := sb.Update(ref.Table).
				Set(ref.Column, nil).
				Where(squirrel.Eq{ref.Column: id}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build detach %s query: %w", ref.Table, err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("error detaching %s.%s from %s %d: %w", ref.Table, ref.Column, d.Owner.Kind, id, err)
			}
		}

		return deleteOwner(ctx, tx, d.Owner, id)
	})
}
