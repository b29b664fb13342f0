package services

import (
	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/services/plant/domain/repositories"
	"github.com/ghuser/grow/services/plant/infrastructure/persistence/memory"
	"github.com/ghuser/grow/services/plant/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for the plant context.
type Services struct {
	PlantFamily *PlantFamilyService
}

// New wires the plant services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var repo repositories.PlantFamilyRepository
	if a.Db != nil {
		repo = sqlstore.NewPlantFamilyRepository(a.Db, a.EventBus)
	} else {
		repo = memory.NewPlantFamilyRepository()
	}

	var purger BedCachePurger
	if a.Redis != nil {
		purger = cache.NewBedCache(a.Redis)
	}
	return &Services{
		PlantFamily: NewPlantFamilyService(repo, purger),
	}
}
