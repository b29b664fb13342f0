package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	plantdomain "github.com/ghuser/grow/services/plant/domain"
	"github.com/ghuser/grow/services/plant/domain/models"
	"github.com/ghuser/grow/services/plant/domain/repositories"
	domainsvcs "github.com/ghuser/grow/services/plant/domain/services"
)

// BedCachePurger drops cached beds whose plant family sets may have changed.
type BedCachePurger interface {
	Purge(ctx context.Context) (int, error)
}

// PlantFamilyService orchestrates creation, retrieval and deletion of plant
// families. Event publishing is handled by the repository layer (outbox pattern).
type PlantFamilyService struct {
	repo   repositories.PlantFamilyRepository
	purger BedCachePurger
}

// NewPlantFamilyService returns a PlantFamilyService. purger may be nil.
func NewPlantFamilyService(repo repositories.PlantFamilyRepository, purger BedCachePurger) *PlantFamilyService {
	return &PlantFamilyService{repo: repo, purger: purger}
}

// Create validates and persists a PlantFamily.
func (s *PlantFamilyService) Create(ctx context.Context, name, nutritionRequirements string, rotationTime int) (*models.PlantFamily, error) {
	familyName, err := models.NewFamilyName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", plantdomain.ErrInvalidPlantFamily, err)
	}

	family, err := models.NewPlantFamily(familyName, nutritionRequirements, rotationTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", plantdomain.ErrInvalidPlantFamily, err)
	}

	if err := domainsvcs.ValidatePlantFamilyForCreation(family); err != nil {
		return nil, fmt.Errorf("%w: %w", plantdomain.ErrInvalidPlantFamily, err)
	}

	if err := s.repo.Save(ctx, family); err != nil {
		return nil, fmt.Errorf("save plant family: %w", err)
	}
	return family, nil
}

// Get retrieves a PlantFamily by id.
func (s *PlantFamilyService) Get(ctx context.Context, id uuid.UUID) (*models.PlantFamily, error) {
	family, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plant family: %w", err)
	}
	return family, nil
}

// List returns every plant family ordered by name.
func (s *PlantFamilyService) List(ctx context.Context) ([]*models.PlantFamily, error) {
	families, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plant families: %w", err)
	}
	return families, nil
}

// Delete removes a plant family. Returns ErrPlantFamilyNotFound if no family
// has the given id.
func (s *PlantFamilyService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete plant family: %w", err)
	}
	if !deleted {
		return plantdomain.ErrPlantFamilyNotFound
	}
	if s.purger != nil {
		_, _ = s.purger.Purge(context.WithoutCancel(ctx))
	}
	return nil
}
