package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/grow/pkg/errhttp"
	gardendomain "github.com/ghuser/grow/services/garden/domain"
	"github.com/ghuser/grow/services/garden/domain/models"
)

// BedResponse is the wire shape of a bed.
type BedResponse struct {
	ID            uuid.UUID   `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	Index         int         `json:"index"         example:"1"`
	Length        int         `json:"length"        example:"200"`
	Width         int         `json:"width"         example:"100"`
	PlantFamilies []uuid.UUID `json:"plantFamilies"`
} // @name Bed

// BedDimensionsRequest is the request body for creating one bed or updating a bed.
type BedDimensionsRequest struct {
	Length int `json:"length" validate:"required,gt=0" example:"200"`
	Width  int `json:"width"  validate:"required,gt=0" example:"100"`
} // @name BedDimensionsRequest

// BedCreationRequest is the request body for the batch endpoints.
type BedCreationRequest struct {
	NumberOfBeds int `json:"numberOfBeds" validate:"required,gt=0" example:"3"`
	Length       int `json:"length"       validate:"required,gt=0" example:"200"`
	Width        int `json:"width"        validate:"required,gt=0" example:"100"`
} // @name BedCreationRequest

// BedCreationResponse is returned by the batch endpoints.
type BedCreationResponse struct {
	Beds    []BedResponse `json:"beds"`
	Message string        `json:"message" example:"Successfully created 3 beds"`
} // @name BedCreationResponse

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Successfully deleted 3 beds"`
} // @name MessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"bed not found"`
} // @name ErrorResponse

func toBedResponse(b *models.Bed) BedResponse {
	families := b.PlantFamilies
	if families == nil {
		families = []uuid.UUID{}
	}
	return BedResponse{
		ID:            b.ID,
		Index:         b.Index,
		Length:        b.Length,
		Width:         b.Width,
		PlantFamilies: families,
	}
}

func toBedResponses(beds []*models.Bed) []BedResponse {
	out := make([]BedResponse, len(beds))
	for i, b := range beds {
		out[i] = toBedResponse(b)
	}
	return out
}

// bedIDParam parses the {bedID} path segment. A malformed id cannot name an
// existing bed, so it is reported as not found.
func bedIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "bedID"))
	if err != nil {
		errhttp.WriteError(w, gardendomain.ErrBedNotFound)
		return uuid.Nil, false
	}
	return id, true
}
