// Package sqlstore implements the PlantFamilyRepository over database/sql for
// both the pgx and sqlite drivers.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/events"
	plantdomain "github.com/ghuser/grow/services/plant/domain"
	domainevents "github.com/ghuser/grow/services/plant/domain/events"
	"github.com/ghuser/grow/services/plant/domain/models"
	"github.com/ghuser/grow/services/plant/domain/repositories"
	"github.com/ghuser/grow/services/plant/infrastructure/persistence/sqlstore/db"
)

var _ repositories.PlantFamilyRepository = (*PlantFamilyRepository)(nil)

// PlantFamilyRepository implements repositories.PlantFamilyRepository against a SQL database.
type PlantFamilyRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPlantFamilyRepository returns a PlantFamilyRepository backed by the given
// pool. When bus is non-nil, creates and deletes publish events in the same
// transaction as the write.
func NewPlantFamilyRepository(database *database.Database, bus *events.EventBus) *PlantFamilyRepository {
	return &PlantFamilyRepository{db: database, bus: bus}
}

// Save persists a new PlantFamily. Returns ErrPlantFamilyAlreadyExists on a
// duplicate name.
func (r *PlantFamilyRepository) Save(ctx context.Context, family *models.PlantFamily) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx, r.db.Driver())
		if err := q.InsertPlantFamily(ctx, db.InsertPlantFamilyParams{
			ID:                    family.ID,
			Name:                  family.Name.String(),
			NutritionRequirements: family.NutritionRequirements,
			RotationTime:          family.RotationTime,
		}); err != nil {
			if database.IsUniqueViolation(err) {
				return plantdomain.ErrPlantFamilyAlreadyExists
			}
			return fmt.Errorf("insert plant family: %w", err)
		}

		if r.bus != nil {
			event := domainevents.PlantFamilyCreatedEvent{
				EventID:       uuid.New(),
				Version:       1,
				PlantFamilyID: family.ID,
				Name:          family.Name.String(),
				RotationTime:  family.RotationTime,
				OccurredAt:    time.Now().UTC(),
			}
			if err := r.bus.PublishJSONInTx(ctx, tx, domainevents.TopicPlantFamilyCreated, event.EventID, event.Version, event); err != nil {
				return fmt.Errorf("publish plant family created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a PlantFamily. Returns ErrPlantFamilyNotFound if not found.
func (r *PlantFamilyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlantFamily, error) {
	q := db.New(r.db.DB(), r.db.Driver())
	row, err := q.GetPlantFamilyByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, plantdomain.ErrPlantFamilyNotFound
		}
		return nil, fmt.Errorf("query plant family: %w", err)
	}
	return rowToPlantFamily(row), nil
}

// FindAll returns every plant family ordered by name.
func (r *PlantFamilyRepository) FindAll(ctx context.Context) ([]*models.PlantFamily, error) {
	q := db.New(r.db.DB(), r.db.Driver())
	rows, err := q.ListPlantFamilies(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plant families: %w", err)
	}
	families := make([]*models.PlantFamily, len(rows))
	for i, row := range rows {
		families[i] = rowToPlantFamily(row)
	}
	return families, nil
}

// Delete removes a plant family. Bed assignments go with it through the
// foreign key cascade.
func (r *PlantFamilyRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx, r.db.Driver()).DeletePlantFamily(ctx, id)
		if err != nil {
			return fmt.Errorf("delete plant family: %w", err)
		}
		deleted = n > 0
		if !deleted || r.bus == nil {
			return nil
		}
		event := domainevents.PlantFamilyDeletedEvent{
			EventID:       uuid.New(),
			Version:       1,
			PlantFamilyID: id,
			OccurredAt:    time.Now().UTC(),
		}
		if err := r.bus.PublishJSONInTx(ctx, tx, domainevents.TopicPlantFamilyDeleted, event.EventID, event.Version, event); err != nil {
			return fmt.Errorf("publish plant family deleted: %w", err)
		}
		return nil
	})
	return deleted, err
}

// rowToPlantFamily maps a db.PlantFamily to a domain models.PlantFamily.
func rowToPlantFamily(row db.PlantFamily) *models.PlantFamily {
	return &models.PlantFamily{
		ID:                    row.ID,
		Name:                  models.FamilyName(row.Name),
		NutritionRequirements: row.NutritionRequirements,
		RotationTime:          row.RotationTime,
	}
}
