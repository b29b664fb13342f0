package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/grow/pkg/errhttp"
	plantdomain "github.com/ghuser/grow/services/plant/domain"
	"github.com/ghuser/grow/services/plant/domain/models"
)

// PlantFamilyResponse is the wire shape of a plant family.
type PlantFamilyResponse struct {
	ID                    uuid.UUID `json:"id"                    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name                  string    `json:"name"                  example:"Solanaceae"`
	NutritionRequirements string    `json:"nutritionRequirements" example:"heavy feeder"`
	RotationTime          int       `json:"rotationTime"          example:"4"`
} // @name PlantFamily

// CreatePlantFamilyRequest is the request body for creating a plant family.
type CreatePlantFamilyRequest struct {
	Name                  string `json:"name"                  validate:"required,notblank,max=255" example:"Solanaceae"`
	NutritionRequirements string `json:"nutritionRequirements" validate:"required,notblank"         example:"heavy feeder"`
	RotationTime          int    `json:"rotationTime"          validate:"gte=0"                     example:"4"`
} // @name CreatePlantFamilyRequest

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Plant family 123e4567-e89b-12d3-a456-426614174000 deleted successfully"`
} // @name PlantMessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"plant family not found"`
} // @name PlantErrorResponse

func toPlantFamilyResponse(f *models.PlantFamily) PlantFamilyResponse {
	return PlantFamilyResponse{
		ID:                    f.ID,
		Name:                  f.Name.String(),
		NutritionRequirements: f.NutritionRequirements,
		RotationTime:          f.RotationTime,
	}
}

func familyIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "familyID"))
	if err != nil {
		errhttp.WriteError(w, plantdomain.ErrPlantFamilyNotFound)
		return uuid.Nil, false
	}
	return id, true
}
