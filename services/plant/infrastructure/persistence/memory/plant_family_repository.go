// Package memory provides an in-memory PlantFamilyRepository for tests and
// ephemeral environments.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	plantdomain "github.com/ghuser/grow/services/plant/domain"
	"github.com/ghuser/grow/services/plant/domain/models"
	"github.com/ghuser/grow/services/plant/domain/repositories"
)

var _ repositories.PlantFamilyRepository = (*PlantFamilyRepository)(nil)

// PlantFamilyRepository keeps plant families in a map guarded by a mutex.
type PlantFamilyRepository struct {
	mu       sync.RWMutex
	families map[uuid.UUID]models.PlantFamily
}

// NewPlantFamilyRepository returns an empty repository.
func NewPlantFamilyRepository() *PlantFamilyRepository {
	return &PlantFamilyRepository{families: make(map[uuid.UUID]models.PlantFamily)}
}

func (r *PlantFamilyRepository) Save(_ context.Context, family *models.PlantFamily) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.families {
		if f.Name == family.Name {
			return plantdomain.ErrPlantFamilyAlreadyExists
		}
	}
	r.families[family.ID] = *family
	return nil
}

func (r *PlantFamilyRepository) GetByID(_ context.Context, id uuid.UUID) (*models.PlantFamily, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[id]
	if !ok {
		return nil, plantdomain.ErrPlantFamilyNotFound
	}
	return &f, nil
}

func (r *PlantFamilyRepository) FindAll(_ context.Context) ([]*models.PlantFamily, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.PlantFamily, 0, len(r.families))
	for _, f := range r.families {
		out = append(out, &f)
	}
	slices.SortFunc(out, func(a, b *models.PlantFamily) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *PlantFamilyRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[id]; !ok {
		return false, nil
	}
	delete(r.families, id)
	return true, nil
}
