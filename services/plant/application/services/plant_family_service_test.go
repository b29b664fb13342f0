package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/grow/migrations"
	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/logger"
	"github.com/ghuser/grow/pkg/migrator"
	plantdomain "github.com/ghuser/grow/services/plant/domain"
	"github.com/ghuser/grow/services/plant/domain/repositories"
	"github.com/ghuser/grow/services/plant/infrastructure/persistence/memory"
	"github.com/ghuser/grow/services/plant/infrastructure/persistence/sqlstore"
)

type countingPurger struct{ calls int }

func (p *countingPurger) Purge(context.Context) (int, error) {
	p.calls++
	return 0, nil
}

func repos() map[string]func(t *testing.T) repositories.PlantFamilyRepository {
	return map[string]func(t *testing.T) repositories.PlantFamilyRepository{
		"memory": func(*testing.T) repositories.PlantFamilyRepository { return memory.NewPlantFamilyRepository() },
		"sqlite": func(t *testing.T) repositories.PlantFamilyRepository {
			ctx := context.Background()
			d, err := database.OpenSQLite(ctx, ":memory:", logger.Discard())
			require.NoError(t, err)
			t.Cleanup(func() { _ = d.Close() })
			_, err = migrator.Up(ctx, d.DB(), goose.DialectSQLite3, migrations.FS)
			require.NoError(t, err)
			return sqlstore.NewPlantFamilyRepository(d, nil)
		},
	}
}

func TestPlantFamilyService(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repos() {
		t.Run(name, func(t *testing.T) {
			t.Run("create get list delete", func(t *testing.T) {
				purger := &countingPurger{}
				svc := NewPlantFamilyService(newRepo(t), purger)

				b, err := svc.Create(ctx, "Solanaceae", "heavy feeder", 4)
				require.NoError(t, err)
				a, err := svc.Create(ctx, "Brassicaceae", "high nitrogen", 3)
				require.NoError(t, err)

				got, err := svc.Get(ctx, b.ID)
				require.NoError(t, err)
				assert.Equal(t, "Solanaceae", got.Name.String())
				assert.Equal(t, "heavy feeder", got.NutritionRequirements)
				assert.Equal(t, 4, got.RotationTime)

				all, err := svc.List(ctx)
				require.NoError(t, err)
				require.Len(t, all, 2)
				assert.Equal(t, a.ID, all[0].ID)
				assert.Equal(t, b.ID, all[1].ID)

				require.NoError(t, svc.Delete(ctx, a.ID))
				assert.Equal(t, 1, purger.calls)

				err = svc.Delete(ctx, a.ID)
				assert.ErrorIs(t, err, plantdomain.ErrPlantFamilyNotFound)
				assert.Equal(t, 1, purger.calls)

				_, err = svc.Get(ctx, a.ID)
				assert.ErrorIs(t, err, plantdomain.ErrPlantFamilyNotFound)
			})

			t.Run("duplicate name", func(t *testing.T) {
				svc := NewPlantFamilyService(newRepo(t), nil)
				_, err := svc.Create(ctx, "Fabaceae", "fixes nitrogen", 2)
				require.NoError(t, err)
				_, err = svc.Create(ctx, "Fabaceae", "other", 1)
				assert.ErrorIs(t, err, plantdomain.ErrPlantFamilyAlreadyExists)
			})

			t.Run("empty list", func(t *testing.T) {
				svc := NewPlantFamilyService(newRepo(t), nil)
				all, err := svc.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, all)

				_, err = svc.Get(ctx, uuid.New())
				assert.ErrorIs(t, err, plantdomain.ErrPlantFamilyNotFound)
			})
		})
	}
}

func TestPlantFamilyService_Create_Invalid(t *testing.T) {
	svc := NewPlantFamilyService(memory.NewPlantFamilyRepository(), nil)
	tests := []struct {
		name, family, nutrition string
		rotation                int
	}{
		{"empty name", "", "x", 1},
		{"long name", strings.Repeat("x", 256), "x", 1},
		{"padded name", " Apiaceae", "x", 1},
		{"blank nutrition", "Apiaceae", " ", 1},
		{"negative rotation", "Apiaceae", "x", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.family, tt.nutrition, tt.rotation)
			assert.ErrorIs(t, err, plantdomain.ErrInvalidPlantFamily)
		})
	}
}
