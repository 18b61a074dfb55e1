package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	AssignGroup(ctx context.Context, studentID, groupID int64) error
	DeleteStudent(ctx context.Context, id int64) (*deletion.Result, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
	deleter     Deleter
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, deleter Deleter) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		deleter:     deleter,
	}
}

func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	student.FullName = strings.TrimSpace(student.FullName)
	if student.FullName == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if student.Promoted && student.NotPromoted {
		return fmt.Errorf("%w: a student cannot be both promoted and not promoted", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error) {
	students, err := s.studentRepo.GetAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if err := validateID(id, "student"); err != nil {
		return nil, err
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}
	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		return 0, writeError(err, "creating", "student")
	}
	return id, nil
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if err := validateID(student.ID, "student"); err != nil {
		return err
	}
	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return writeError(err, "updating", "student")
	}
	return nil
}

// AssignGroup moves a student to another group
func (s *studentServiceImpl) AssignGroup(ctx context.Context, studentID, groupID int64) error {
	if err := validateID(studentID, "student"); err != nil {
		return err
	}
	if err := validateID(groupID, "group"); err != nil {
		return err
	}
	if err := s.studentRepo.AssignGroup(ctx, studentID, groupID); err != nil {
		return writeError(err, "assigning group to", "student")
	}
	return nil
}

// DeleteStudent removes a student together with the records it owns
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) (*deletion.Result, error) {
	return s.deleter.Delete(ctx, deletion.KindStudent, id)
}
