package services

import (
	"context"
	"fmt"

	"github.com/yigit/schooladmin/internal/app/models"
)

// CatalogService reads the lookup tables used by forms
type CatalogService interface {
	GetGenders(ctx context.Context) ([]*models.Option, error)
	GetGrades(ctx context.Context) ([]*models.Option, error)
	GetInstitutionTypes(ctx context.Context) ([]*models.InstitutionType, error)
}

type catalogServiceImpl struct {
	catalogRepo CatalogStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo CatalogStore) CatalogService {
	return &catalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *catalogServiceImpl) GetGenders(ctx context.Context) ([]*models.Option, error) {
	genders, err := s.catalogRepo.GetGenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving genders: %w", err)
	}
	return genders, nil
}

func (s *catalogServiceImpl) GetGrades(ctx context.Context) ([]*models.Option, error) {
	grades, err := s.catalogRepo.GetGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

func (s *catalogServiceImpl) GetInstitutionTypes(ctx context.Context) ([]*models.InstitutionType, error) {
	types, err := s.catalogRepo.GetInstitutionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institution types: %w", err)
	}
	return types, nil
}
