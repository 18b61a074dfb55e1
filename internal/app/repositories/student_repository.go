package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/schooladmin/internal/app/models"
)

var studentColumns = []string{
	"s.id", "s.institution_id", "s.gender_id", "s.grade_id", "s.group_id", "s.teacher_id",
	"s.full_name", "s.curp", "s.birth_date",
	"date_part('year', age(s.birth_date))::int AS age",
	"s.guardian", "s.emergency_contact", "s.address", "s.medical_diagnosis", "s.medications",
	"s.allergies", "s.promoted", "s.not_promoted", "s.notes", "s.enrolled_on", "s.active",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: psql,
	}
}

// detailQuery selects students together with the labels of every referenced record
func (r *StudentRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).
		Columns(
			"i.name AS institution_name",
			"cg.name AS gender_name",
			"gr.description AS grade_description",
			"g.name AS group_name",
			"ggr.grade || ' ' || ggr.description AS group_grade",
			"gt.full_name AS group_teacher_name",
			"t.full_name AS teacher_name",
		).
		From("students s").
		LeftJoin("institutions i ON i.id = s.institution_id").
		LeftJoin("catalog_genders cg ON cg.id = s.gender_id").
		LeftJoin("catalog_grades gr ON gr.id = s.grade_id").
		LeftJoin("groups g ON g.id = s.group_id").
		LeftJoin("catalog_grades ggr ON ggr.id = g.grade_id").
		LeftJoin("staff gt ON gt.id = g.teacher_id").
		LeftJoin("staff t ON t.id = s.teacher_id")
}

// GetAllStudents retrieves every student ordered by name
func (r *StudentRepository) GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error) {
	return selectAll[models.StudentDetail](ctx, r.db, r.detailQuery().OrderBy("s.full_name ASC"), "students")
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	query := r.detailQuery().Where(squirrel.Eq{"s.id": id})
	return selectOne[models.StudentDetail](ctx, r.db, query, fmt.Sprintf("student %d not found", id))
}

// GetStudentsByGroup retrieves the students assigned to a group
func (r *StudentRepository) GetStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	query := r.sb.Select(studentColumns...).
		From("students s").
		Where(squirrel.Eq{"s.group_id": groupID}).
		OrderBy("s.full_name ASC")
	return selectAll[models.Student](ctx, r.db, query, "group students")
}

func studentValues(s *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"institution_id":    s.InstitutionID,
		"gender_id":         s.GenderID,
		"grade_id":          s.GradeID,
		"group_id":          s.GroupID,
		"teacher_id":        s.TeacherID,
		"full_name":         s.FullName,
		"curp":              s.CURP,
		"birth_date":        s.BirthDate,
		"guardian":          s.Guardian,
		"emergency_contact": s.EmergencyContact,
		"address":           s.Address,
		"medical_diagnosis": s.MedicalDiagnosis,
		"medications":       s.Medications,
		"allergies":         s.Allergies,
		"promoted":          s.Promoted,
		"not_promoted":      s.NotPromoted,
		"notes":             s.Notes,
		"enrolled_on":       s.EnrolledOn,
		"active":            s.Active,
	}
}

// CreateStudent creates a new student
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	return insertReturningID(ctx, r.db, r.sb.Insert("students").SetMap(studentValues(student)), "student")
}

// UpdateStudent replaces every editable column of a student
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	return updateByID(ctx, r.db, r.sb.Update("students").SetMap(studentValues(student)), "student", student.ID)
}

// AssignGroup moves a student to another group
func (r *StudentRepository) AssignGroup(ctx context.Context, studentID, groupID int64) error {
	return updateByID(ctx, r.db, r.sb.Update("students").Set("group_id", groupID), "student", studentID)
}
