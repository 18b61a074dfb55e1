package deletion

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

// memStore is a tiny relational store understanding the three statement
// shapes the strategies emit. It enforces declared foreign keys on delete and
// gives units of work snapshot semantics.

type row map[string]any

type tables map[string][]row

type foreignKey struct {
	table  string
	column string
	parent string
}

var (
	deleteRe = regexp.MustCompile(`^DELETE FROM (\w+) WHERE (\w+) = \$1$`)
	updateRe = regexp.MustCompile(`^UPDATE (\w+) SET (\w+) = \$1 WHERE (\w+) = \$2$`)
	selectRe = regexp.MustCompile(`^SELECT (\w+) FROM (\w+) WHERE (\w+) = \$1 ORDER BY (\w+)$`)
)

type memStore struct {
	data       tables
	fks        []foreignKey
	failOn     func(sql string, args []any) error
	openUnits  int
	statements []string
}

func newMemStore(data tables, fks []foreignKey) *memStore {
	return &memStore{data: data, fks: fks}
}

func (s *memStore) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	working := s.data.clone()
	n, err := s.apply(working, sql, args)
	if err != nil {
		return 0, err
	}
	s.data = working
	return n, nil
}

func (s *memStore) QueryStrings(ctx context.Context, sql string, args ...any) ([]string, error) {
	return s.query(s.data, sql, args)
}

func (s *memStore) Begin(ctx context.Context) (db.UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, dberrors.Translate(err)
	}
	s.openUnits++
	return &memUnit{store: s, working: s.data.clone()}, nil
}

func (s *memStore) count(table string) int {
	return len(s.data[table])
}

func (s *memStore) find(table string, id int64) row {
	for _, r := range s.data[table] {
		if r["id"] == id {
			return r
		}
	}
	return nil
}

func (s *memStore) where(table, column string, value any) []row {
	var out []row
	for _, r := range s.data[table] {
		if r[column] == value {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) apply(t tables, sql string, args []any) (int64, error) {
	s.statements = append(s.statements, sql)
	if s.failOn != nil {
		if err := s.failOn(sql, args); err != nil {
			return 0, err
		}
	}

	if m := deleteRe.FindStringSubmatch(sql); m != nil {
		table, column, value := m[1], m[2], args[0]
		var kept []row
		var removed int64
		for _, r := range t[table] {
			if r[column] != value {
				kept = append(kept, r)
				continue
			}
			if err := s.checkReferences(t, table, r["id"]); err != nil {
				return 0, err
			}
			removed++
		}
		t[table] = kept
		return removed, nil
	}

	if m := updateRe.FindStringSubmatch(sql); m != nil {
		table, setColumn, whereColumn := m[1], m[2], m[3]
		var updated int64
		for _, r := range t[table] {
			if r[whereColumn] == args[1] {
				r[setColumn] = args[0]
				updated++
			}
		}
		return updated, nil
	}

	return 0, fmt.Errorf("memstore: unsupported statement %q", sql)
}

func (s *memStore) checkReferences(t tables, parent string, id any) error {
	for _, fk := range s.fks {
		if fk.parent != parent {
			continue
		}
		for _, child := range t[fk.table] {
			if child[fk.column] == id {
				return dberrors.NewForeignKeyViolation(fk.table, fmt.Sprintf("%s_%s_fkey", fk.table, fk.column), nil)
			}
		}
	}
	return nil
}

func (s *memStore) query(t tables, sql string, args []any) ([]string, error) {
	s.statements = append(s.statements, sql)
	if s.failOn != nil {
		if err := s.failOn(sql, args); err != nil {
			return nil, err
		}
	}

	m := selectRe.FindStringSubmatch(sql)
	if m == nil {
		return nil, fmt.Errorf("memstore: unsupported query %q", sql)
	}
	label, table, column := m[1], m[2], m[3]
	var out []string
	for _, r := range t[table] {
		if r[column] == args[0] {
			out = append(out, r[label].(string))
		}
	}
	sort.Strings(out)
	return out, nil
}

func (t tables) clone() tables {
	out := make(tables, len(t))
	for name, rows := range t {
		copied := make([]row, 0, len(rows))
		for _, r := range rows {
			c := make(row, len(r))
			for k, v := range r {
				c[k] = v
			}
			copied = append(copied, c)
		}
		out[name] = copied
	}
	return out
}

type memUnit struct {
	store   *memStore
	working tables
	closed  bool
}

func (u *memUnit) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return u.store.apply(u.working, sql, args)
}

func (u *memUnit) QueryStrings(ctx context.Context, sql string, args ...any) ([]string, error) {
	return u.store.query(u.working, sql, args)
}

func (u *memUnit) Commit(ctx context.Context) error {
	if u.closed {
		return fmt.Errorf("memstore: unit already closed")
	}
	u.closed = true
	u.store.openUnits--
	u.store.data = u.working
	return nil
}

func (u *memUnit) Rollback(ctx context.Context) error {
	if u.closed {
		return nil
	}
	u.closed = true
	u.store.openUnits--
	return nil
}
