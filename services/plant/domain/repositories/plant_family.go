package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/grow/services/plant/domain/models"
)

// PlantFamilyRepository is the persistence interface for the PlantFamily aggregate.
// The domain layer owns this interface; infrastructure implements it.
type PlantFamilyRepository interface {
	// Save persists a new PlantFamily. Returns ErrPlantFamilyAlreadyExists
	// when the name is taken.
	Save(ctx context.Context, family *models.PlantFamily) error

	// GetByID returns ErrPlantFamilyNotFound when no family has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlantFamily, error)

	// FindAll returns every plant family ordered by name.
	FindAll(ctx context.Context) ([]*models.PlantFamily, error)

	// Delete removes a plant family and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
