package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
)

// GroupRepository handles group database operations
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: psql,
	}
}

func (r *GroupRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"g.id", "g.name", "g.grade_id", "g.teacher_id", "g.school_year",
		"gr.grade || ' ' || gr.description AS grade_description",
		"p.full_name AS teacher_name",
	).
		From("groups g").
		LeftJoin("catalog_grades gr ON gr.id = g.grade_id").
		LeftJoin("staff p ON p.id = g.teacher_id")
}

// GetAllGroups retrieves every group ordered by school level, grade and name
func (r *GroupRepository) GetAllGroups(ctx context.Context) ([]*models.GroupDetail, error) {
	query := r.detailQuery().OrderBy("gr.level_id", "gr.grade", "g.name")
	return selectAll[models.GroupDetail](ctx, r.db, query, "groups")
}

// GetGroupByID retrieves a group by ID
func (r *GroupRepository) GetGroupByID(ctx context.Context, id int64) (*models.GroupDetail, error) {
	query := r.detailQuery().Where(squirrel.Eq{"g.id": id})
	return selectOne[models.GroupDetail](ctx, r.db, query, fmt.Sprintf("group %d not found", id))
}

// GetGroupsByTeacher retrieves the groups a staff member teaches
func (r *GroupRepository) GetGroupsByTeacher(ctx context.Context, teacherID int64) ([]*models.GroupDetail, error) {
	query := r.detailQuery().
		Where(squirrel.Eq{"g.teacher_id": teacherID}).
		OrderBy("gr.level_id", "gr.grade", "g.name")
	return selectAll[models.GroupDetail](ctx, r.db, query, "teacher groups")
}

func groupValues(g *models.Group) map[string]interface{} {
	return map[string]interface{}{
		"name":        g.Name,
		"grade_id":    g.GradeID,
		"teacher_id":  g.TeacherID,
		"school_year": g.SchoolYear,
	}
}

// CreateGroup creates a new group
func (r *GroupRepository) CreateGroup(ctx context.Context, group *models.Group) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("groups").SetMap(groupValues(group)), "group")
}

// UpdateGroup replaces every editable column of a group
func (r *GroupRepository) UpdateGroup(ctx context.Context, group *models.Group) error {
	return updateByID(ctx, r.db, r.sb.Update("groups").SetMap(groupValues(group)), "group", group.ID)
}
