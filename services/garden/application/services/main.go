package services

import (
	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/pkg/cache"
	"github.com/ghuser/grow/pkg/telemetry"
	"github.com/ghuser/grow/services/garden/domain/repositories"
	"github.com/ghuser/grow/services/garden/infrastructure/persistence/memory"
	"github.com/ghuser/grow/services/garden/infrastructure/persistence/sqlstore"
)

// Services is the application-layer service container for the garden context.
type Services struct {
	Bed *BedService
}

// New wires the garden services with infrastructure from the Application container.
// Without a database the beds live in process memory.
func New(a *app.Application) *Services {
	var store repositories.BedStore
	if a.Db != nil {
		store = sqlstore.NewBedRepository(a.Db, a.EventBus)
	} else {
		store = memory.NewBedRepository()
	}

	var bedCache *cache.BedCache
	if a.Redis != nil {
		bedCache = cache.NewBedCache(a.Redis)
	}
	metrics, err := telemetry.NewBedMetrics()
	if err != nil {
		a.Logger.Warn("bed metrics disabled", "error", err)
	}
	return &Services{
		Bed: NewBedService(store, bedCache).WithMetrics(metrics),
	}
}
