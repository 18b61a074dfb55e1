package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
)

// CatalogRepository reads the fixed lookup tables
type CatalogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		sb: psql,
	}
}

// GetGenders lists the gender catalog
func (r *CatalogRepository) GetGenders(ctx context.Context) ([]*models.Option, error) {
	query := r.sb.Select("id AS value", "name AS label").From("catalog_genders").OrderBy("id")
	return selectAll[models.Option](ctx, r.db, query, "genders")
}

// GetGrades lists grades labelled "<grade> <description>" in school order
func (r *CatalogRepository) GetGrades(ctx context.Context) ([]*models.Option, error) {
	query := r.sb.Select("id AS value", "grade || ' ' || description AS label").
		From("catalog_grades").
		OrderBy("level_id", "grade")
	return selectAll[models.Option](ctx, r.db, query, "grades")
}

// GetInstitutionTypes lists the institution type catalog
func (r *CatalogRepository) GetInstitutionTypes(ctx context.Context) ([]*models.InstitutionType, error) {
	query := r.sb.Select("id", "code", "description").From("catalog_institution_types").OrderBy("id")
	return selectAll[models.InstitutionType](ctx, r.db, query, "institution types")
}
