package deletion

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schooladmin/internal/db"
)

// Cascade deletes every strictly dependent row before the owner, all in one
// unit of work.
type Cascade struct {
	Owner      Owner
	Dependents []Relation
}

// Name implements Strategy
func (c *Cascade) Name() string { return "cascade" }

// Delete implements Strategy
func (c *Cascade) Delete(ctx context.Context, store db.Store, id int64) error {
	return db.RunInUnitOfWork(ctx, store, func(ctx context.Context, tx db.Executor) error {
		for _, dep := range c.Dependents {
			query, args, err := sb.Delete(dep.Table).Where(squirrel.Eq{dep.Column: id}).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete %s query: %w", dep.Table, err)
			}
			if _, err := tx.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("error deleting %s of %s %d: %w", dep.Table, c.Owner.Kind, id, err)
			}
		}

		return deleteOwner(ctx, tx, c.Owner, id)
	})
}
