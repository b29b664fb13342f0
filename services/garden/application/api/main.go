package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/services/garden/application/handlers"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// GardenRoutes registers bed endpoints on the provided chi router.
// Static segments are matched before {bedID}, so /beds/all and /beds/single
// never reach the id handlers.
func GardenRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/garden/beds", func(r chi.Router) {
		r.Post("/", handlers.NewPostBedsHandler(svcs).Execute)
		r.Get("/", handlers.NewGetBedsHandler(svcs).Execute)
		r.Post("/single", handlers.NewPostBedHandler(svcs).Execute)
		r.Post("/with-cleanup", handlers.NewPostBedsWithCleanupHandler(svcs).Execute)
		r.Delete("/all", handlers.NewDeleteBedsHandler(svcs).Execute)
		r.Get("/{bedID}", handlers.NewGetBedHandler(svcs).Execute)
		r.Put("/{bedID}", handlers.NewPutBedHandler(svcs).Execute)
		r.Delete("/{bedID}", handlers.NewDeleteBedHandler(svcs).Execute)
	})
}
