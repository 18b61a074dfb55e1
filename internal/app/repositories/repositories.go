package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
	"github.com/yigit/schooladmin/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	StaffRepository       *StaffRepository
	InstitutionRepository *InstitutionRepository
	GroupRepository       *GroupRepository
	CatalogRepository     *CatalogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		StaffRepository:       NewStaffRepository(db),
		InstitutionRepository: NewInstitutionRepository(db),
		GroupRepository:       NewGroupRepository(db),
		CatalogRepository:     NewCatalogRepository(db),
	}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectAll runs query and scans every row into T by db tag
func selectAll[T any](ctx context.Context, db *pgxpool.Pool, query squirrel.Sqlizer, what string) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing query")
		return nil, fmt.Errorf("error querying %s: %w", what, dberrors.Translate(err))
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error scanning rows")
		return nil, fmt.Errorf("error scanning %s: %w", what, dberrors.Translate(err))
	}
	return items, nil
}

// selectOne runs query and scans exactly one row into T. No row yields a
// not found error naming notFound.
func selectOne[T any](ctx context.Context, db *pgxpool.Pool, query squirrel.Sqlizer, notFound string) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing query")
		return nil, dberrors.Translate(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(notFound)
		}
		logger.Error().Err(err).Msg("Error scanning row")
		return nil, dberrors.Translate(err)
	}
	return item, nil
}

// insertReturningID runs an INSERT ... RETURNING id
func insertReturningID(ctx context.Context, db *pgxpool.Pool, query squirrel.InsertBuilder, what string) (int64, error) {
	sql, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building create %s SQL", what)
		return 0, fmt.Errorf("failed to build create %s query: %w", what, err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msgf("Error executing create %s query", what)
		return 0, dberrors.Translate(err)
	}
	return id, nil
}

// updateByID runs an UPDATE and reports a not found error when nothing matched
func updateByID(ctx context.Context, db *pgxpool.Pool, query squirrel.UpdateBuilder, what string, id int64) error {
	sql, args, err := query.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building update %s SQL", what)
		return fmt.Errorf("failed to build update %s query: %w", what, err)
	}

	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msgf("Error executing update %s query", what)
		return dberrors.Translate(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", what, id))
	}
	return nil
}
