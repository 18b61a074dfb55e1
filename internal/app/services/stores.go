package services

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"

	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models"
)

// StudentStore is the persistence the student service depends on
type StudentStore interface {
	GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	GetStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	AssignGroup(ctx context.Context, studentID, groupID int64) error
}

// StaffStore is the persistence the staff service depends on
type StaffStore interface {
	GetAllStaff(ctx context.Context) ([]*models.StaffDetail, error)
	GetStaffByID(ctx context.Context, id int64) (*models.StaffDetail, error)
	GetActiveTeachers(ctx context.Context) ([]*models.Option, error)
	CreateStaff(ctx context.Context, staff *models.Staff) (int64, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
}

// InstitutionStore is the persistence the institution service depends on
type InstitutionStore interface {
	GetAllInstitutions(ctx context.Context) ([]*models.InstitutionDetail, error)
	GetInstitutionLabels(ctx context.Context) ([]*models.Option, error)
	GetInstitutionByID(ctx context.Context, id int64) (*models.InstitutionDetail, error)
	CreateInstitution(ctx context.Context, institution *models.Institution) (int64, error)
	UpdateInstitution(ctx context.Context, institution *models.Institution) error
}

// GroupStore is the persistence the group service depends on
type GroupStore interface {
	GetAllGroups(ctx context.Context) ([]*models.GroupDetail, error)
	GetGroupByID(ctx context.Context, id int64) (*models.GroupDetail, error)
	GetGroupsByTeacher(ctx context.Context, teacherID int64) ([]*models.GroupDetail, error)
	CreateGroup(ctx context.Context, group *models.Group) (int64, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
}

// CatalogStore reads the lookup tables
type CatalogStore interface {
	GetGenders(ctx context.Context) ([]*models.Option, error)
	GetGrades(ctx context.Context) ([]*models.Option, error)
	GetInstitutionTypes(ctx context.Context) ([]*models.InstitutionType, error)
}

// UserStore is the persistence the auth service depends on
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	EnsureUser(ctx context.Context, user *models.User) (bool, error)
}

// Deleter removes an owner entity with the strategy configured for its kind
type Deleter interface {
	Delete(ctx context.Context, kind deletion.EntityKind, id int64) (*deletion.Result, error)
}
