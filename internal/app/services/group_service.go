package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// GroupService defines the interface for group-related operations
type GroupService interface {
	GetAllGroups(ctx context.Context) ([]*models.GroupDetail, error)
	GetGroupByID(ctx context.Context, id int64) (*models.GroupDetail, error)
	GetGroupStudents(ctx context.Context, groupID int64) ([]*models.Student, error)
	GetGroupsByTeacher(ctx context.Context, teacherID int64) ([]*models.GroupDetail, error)
	CreateGroup(ctx context.Context, group *models.Group) (int64, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id int64) (*deletion.Result, error)
}

type groupServiceImpl struct {
	groupRepo   GroupStore
	studentRepo StudentStore
	deleter     Deleter
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo GroupStore, studentRepo StudentStore, deleter Deleter) GroupService {
	return &groupServiceImpl{
		groupRepo:   groupRepo,
		studentRepo: studentRepo,
		deleter:     deleter,
	}
}

func (s *groupServiceImpl) validateGroup(group *models.Group) error {
	if group == nil {
		return fmt.Errorf("%w: group is nil", apperrors.ErrValidationFailed)
	}
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if group.GradeID <= 0 {
		return fmt.Errorf("%w: grade is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllGroups retrieves all groups
func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]*models.GroupDetail, error) {
	groups, err := s.groupRepo.GetAllGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	return groups, nil
}

// GetGroupByID retrieves a group by ID
func (s *groupServiceImpl) GetGroupByID(ctx context.Context, id int64) (*models.GroupDetail, error) {
	if err := validateID(id, "group"); err != nil {
		return nil, err
	}
	return s.groupRepo.GetGroupByID(ctx, id)
}

// GetGroupStudents lists the students of an existing group
func (s *groupServiceImpl) GetGroupStudents(ctx context.Context, groupID int64) ([]*models.Student, error) {
	if _, err := s.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	students, err := s.studentRepo.GetStudentsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group students: %w", err)
	}
	return students, nil
}

// GetGroupsByTeacher lists the groups taught by a staff member
func (s *groupServiceImpl) GetGroupsByTeacher(ctx context.Context, teacherID int64) ([]*models.GroupDetail, error) {
	if err := validateID(teacherID, "teacher"); err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.GetGroupsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher groups: %w", err)
	}
	return groups, nil
}

// CreateGroup creates a new group
func (s *groupServiceImpl) CreateGroup(ctx context.Context, group *models.Group) (int64, error) {
	if err := s.validateGroup(group); err != nil {
		return 0, err
	}
	id, err := s.groupRepo.CreateGroup(ctx, group)
	if err != nil {
		return 0, writeError(err, "creating", "group")
	}
	return id, nil
}

// UpdateGroup updates an existing group
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, group *models.Group) error {
	if err := s.validateGroup(group); err != nil {
		return err
	}
	if err := validateID(group.ID, "group"); err != nil {
		return err
	}
	if err := s.groupRepo.UpdateGroup(ctx, group); err != nil {
		return writeError(err, "updating", "group")
	}
	return nil
}

// DeleteGroup removes a group unless students are still assigned to it
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id int64) (*deletion.Result, error) {
	return s.deleter.Delete(ctx, deletion.KindGroup, id)
}
