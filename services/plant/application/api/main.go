package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/services/plant/application/handlers"
	appsvcs "github.com/ghuser/grow/services/plant/application/services"
)

// PlantRoutes registers plant family endpoints on the provided chi router.
func PlantRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/plants/families", func(r chi.Router) {
		r.Get("/", handlers.NewGetPlantFamiliesHandler(svcs).Execute)
		r.Post("/", handlers.NewPostPlantFamilyHandler(svcs).Execute)
		r.Get("/{familyID}", handlers.NewGetPlantFamilyHandler(svcs).Execute)
		r.Delete("/{familyID}", handlers.NewDeletePlantFamilyHandler(svcs).Execute)
	})
}
