package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
)

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
		sb: psql,
	}
}

func (r *InstitutionRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"i.id", "i.type_id", "i.name", "i.cct", "i.zone", "i.sector", "i.address",
		"i.phone", "i.email", "i.principal", "i.founded_on", "i.active",
		"ct.code AS type_code", "ct.description AS type_description",
	).
		From("institutions i").
		LeftJoin("catalog_institution_types ct ON ct.id = i.type_id")
}

// GetAllInstitutions retrieves every institution with its type
func (r *InstitutionRepository) GetAllInstitutions(ctx context.Context) ([]*models.InstitutionDetail, error) {
	return selectAll[models.InstitutionDetail](ctx, r.db, r.detailQuery().OrderBy("i.name ASC"), "institutions")
}

// GetInstitutionLabels lists institutions as value/label pairs
func (r *InstitutionRepository) GetInstitutionLabels(ctx context.Context) ([]*models.Option, error) {
	query := r.sb.Select("id AS value", "name AS label").
		From("institutions").
		OrderBy("name ASC")
	return selectAll[models.Option](ctx, r.db, query, "institution labels")
}

// GetInstitutionByID retrieves an institution by ID
func (r *InstitutionRepository) GetInstitutionByID(ctx context.Context, id int64) (*models.InstitutionDetail, error) {
	query := r.detailQuery().Where(squirrel.Eq{"i.id": id})
	return selectOne[models.InstitutionDetail](ctx, r.db, query, fmt.Sprintf("institution %d not found", id))
}

func institutionValues(i *models.Institution) map[string]interface{} {
	return map[string]interface{}{
		"type_id":    i.TypeID,
		"name":       i.Name,
		"cct":        i.CCT,
		"zone":       i.Zone,
		"sector":     i.Sector,
		"address":    i.Address,
		"phone":      i.Phone,
		"email":      i.Email,
		"principal":  i.Principal,
		"founded_on": i.FoundedOn,
		"active":     i.Active,
	}
}

// CreateInstitution creates a new institution
func (r *InstitutionRepository) CreateInstitution(ctx context.Context, institution *models.Institution) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("institutions").SetMap(institutionValues(institution)), "institution")
}

// UpdateInstitution replaces every editable column of an institution
func (r *InstitutionRepository) UpdateInstitution(ctx context.Context, institution *models.Institution) error {
	return updateByID(ctx, r.db, r.sb.Update("institutions").SetMap(institutionValues(institution)), "institution", institution.ID)
}
