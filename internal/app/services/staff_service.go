package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// StaffService defines the interface for staff-related operations
type StaffService interface {
	GetAllStaff(ctx context.Context) ([]*models.StaffDetail, error)
	GetStaffByID(ctx context.Context, id int64) (*models.StaffDetail, error)
	GetTeacherOptions(ctx context.Context) ([]*models.Option, error)
	CreateStaff(ctx context.Context, staff *models.Staff) (int64, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeleteStaff(ctx context.Context, id int64) (*deletion.Result, error)
}

type staffServiceImpl struct {
	staffRepo StaffStore
	deleter   Deleter
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo StaffStore, deleter Deleter) StaffService {
	return &staffServiceImpl{
		staffRepo: staffRepo,
		deleter:   deleter,
	}
}

func (s *staffServiceImpl) validateStaff(staff *models.Staff) error {
	if staff == nil {
		return fmt.Errorf("%w: staff is nil", apperrors.ErrValidationFailed)
	}
	staff.FullName = strings.TrimSpace(staff.FullName)
	if staff.FullName == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllStaff retrieves all staff members
func (s *staffServiceImpl) GetAllStaff(ctx context.Context) ([]*models.StaffDetail, error) {
	staff, err := s.staffRepo.GetAllStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}
	return staff, nil
}

// GetStaffByID retrieves a staff member by ID
func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.StaffDetail, error) {
	if err := validateID(id, "staff"); err != nil {
		return nil, err
	}
	return s.staffRepo.GetStaffByID(ctx, id)
}

// GetTeacherOptions lists the active staff members that can teach
func (s *staffServiceImpl) GetTeacherOptions(ctx context.Context) ([]*models.Option, error) {
	teachers, err := s.staffRepo.GetActiveTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// CreateStaff creates a new staff member
func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff) (int64, error) {
	if err := s.validateStaff(staff); err != nil {
		return 0, err
	}
	id, err := s.staffRepo.CreateStaff(ctx, staff)
	if err != nil {
		return 0, writeError(err, "creating", "staff")
	}
	return id, nil
}

// UpdateStaff updates an existing staff member
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if err := s.validateStaff(staff); err != nil {
		return err
	}
	if err := validateID(staff.ID, "staff"); err != nil {
		return err
	}
	if err := s.staffRepo.UpdateStaff(ctx, staff); err != nil {
		return writeError(err, "updating", "staff")
	}
	return nil
}

// DeleteStaff removes a staff member and unassigns it from groups and students
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) (*deletion.Result, error) {
	return s.deleter.Delete(ctx, deletion.KindStaff, id)
}
