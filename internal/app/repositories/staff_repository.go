package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
)

// StaffRepository handles staff database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: psql,
	}
}

func (r *StaffRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id", "p.institution_id", "p.full_name", "p.rfc", "p.curp", "p.position",
		"p.specialty", "p.phone", "p.email", "p.hired_on", "p.active",
		"i.name AS institution_name",
	).
		From("staff p").
		LeftJoin("institutions i ON i.id = p.institution_id")
}

// GetAllStaff retrieves every staff member with its institution name
func (r *StaffRepository) GetAllStaff(ctx context.Context) ([]*models.StaffDetail, error) {
	return selectAll[models.StaffDetail](ctx, r.db, r.detailQuery().OrderBy("p.full_name ASC"), "staff")
}

// GetStaffByID retrieves a staff member by ID
func (r *StaffRepository) GetStaffByID(ctx context.Context, id int64) (*models.StaffDetail, error) {
	query := r.detailQuery().Where(squirrel.Eq{"p.id": id})
	return selectOne[models.StaffDetail](ctx, r.db, query, fmt.Sprintf("staff %d not found", id))
}

// GetActiveTeachers lists active staff as value/label pairs ordered by name
func (r *StaffRepository) GetActiveTeachers(ctx context.Context) ([]*models.Option, error) {
	query := r.sb.Select("id AS value", "full_name AS label").
		From("staff").
		Where(squirrel.Eq{"active": true}).
		OrderBy("full_name ASC")
	return selectAll[models.Option](ctx, r.db, query, "teachers")
}

func staffValues(s *models.Staff) map[string]interface{} {
	return map[string]interface{}{
		"institution_id": s.InstitutionID,
		"full_name":      s.FullName,
		"rfc":            s.RFC,
		"curp":           s.CURP,
		"position":       s.Position,
		"specialty":      s.Specialty,
		"phone":          s.Phone,
		"email":          s.Email,
		"hired_on":       s.HiredOn,
		"active":         s.Active,
	}
}

// CreateStaff creates a new staff member
func (r *StaffRepository) CreateStaff(ctx context.Context, staff *models.Staff) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("staff").SetMap(staffValues(staff)), "staff")
}

// UpdateStaff replaces every editable column of a staff member
func (r *StaffRepository) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	return updateByID(ctx, r.db, r.sb.Update("staff").SetMap(staffValues(staff)), "staff", staff.ID)
}
