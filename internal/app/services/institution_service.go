package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
)

// InstitutionService defines the interface for institution-related operations
type InstitutionService interface {
	GetAllInstitutions(ctx context.Context) ([]*models.InstitutionDetail, error)
	GetInstitutionLabels(ctx context.Context) ([]*models.Option, error)
	GetInstitutionByID(ctx context.Context, id int64) (*models.InstitutionDetail, error)
	CreateInstitution(ctx context.Context, institution *models.Institution) (int64, error)
	UpdateInstitution(ctx context.Context, institution *models.Institution) error
	DeleteInstitution(ctx context.Context, id int64) (*deletion.Result, error)
}

type institutionServiceImpl struct {
	institutionRepo InstitutionStore
	deleter         Deleter
}

// NewInstitutionService creates a new institution service instance
func NewInstitutionService(institutionRepo InstitutionStore, deleter Deleter) InstitutionService {
	return &institutionServiceImpl{
		institutionRepo: institutionRepo,
		deleter:         deleter,
	}
}

func (s *institutionServiceImpl) validateInstitution(institution *models.Institution) error {
	if institution == nil {
		return fmt.Errorf("%w: institution is nil", apperrors.ErrValidationFailed)
	}
	institution.Name = strings.TrimSpace(institution.Name)
	if institution.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllInstitutions retrieves all institutions
func (s *institutionServiceImpl) GetAllInstitutions(ctx context.Context) ([]*models.InstitutionDetail, error) {
	institutions, err := s.institutionRepo.GetAllInstitutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institutions: %w", err)
	}
	return institutions, nil
}

// GetInstitutionLabels lists institutions for selects
func (s *institutionServiceImpl) GetInstitutionLabels(ctx context.Context) ([]*models.Option, error) {
	labels, err := s.institutionRepo.GetInstitutionLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institution labels: %w", err)
	}
	return labels, nil
}

// GetInstitutionByID retrieves an institution by ID
func (s *institutionServiceImpl) GetInstitutionByID(ctx context.Context, id int64) (*models.InstitutionDetail, error) {
	if err := validateID(id, "institution"); err != nil {
		return nil, err
	}
	return s.institutionRepo.GetInstitutionByID(ctx, id)
}

// CreateInstitution creates a new institution
func (s *institutionServiceImpl) CreateInstitution(ctx context.Context, institution *models.Institution) (int64, error) {
	if err := s.validateInstitution(institution); err != nil {
		return 0, err
	}
	id, err := s.institutionRepo.CreateInstitution(ctx, institution)
	if err != nil {
		return 0, writeError(err, "creating", "institution")
	}
	return id, nil
}

// UpdateInstitution updates an existing institution
func (s *institutionServiceImpl) UpdateInstitution(ctx context.Context, institution *models.Institution) error {
	if err := s.validateInstitution(institution); err != nil {
		return err
	}
	if err := validateID(institution.ID, "institution"); err != nil {
		return err
	}
	if err := s.institutionRepo.UpdateInstitution(ctx, institution); err != nil {
		return writeError(err, "updating", "institution")
	}
	return nil
}

// DeleteInstitution removes an institution unless students or staff still belong to it
func (s *institutionServiceImpl) DeleteInstitution(ctx context.Context, id int64) (*deletion.Result, error) {
	return s.deleter.Delete(ctx, deletion.KindInstitution, id)
}
