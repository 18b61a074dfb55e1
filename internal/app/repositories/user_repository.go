package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
	"github.com/yigit/schooladmin/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: psql,
	}
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := r.sb.Select("id", "username", "password_hash", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"username": username})
	return selectOne[models.User](ctx, r.db, query, fmt.Sprintf("user %q not found", username))
}

// EnsureUser inserts user unless the username already exists. It reports
// whether a row was created.
func (r *UserRepository) EnsureUser(ctx context.Context, user *models.User) (bool, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password_hash", "role").
		Values(user.Username, user.PasswordHash, string(user.Role)).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build ensure user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing ensure user query")
		return false, dberrors.Translate(err)
	}
	return cmdTag.RowsAffected() == 1, nil
}
