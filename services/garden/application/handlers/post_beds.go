package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	pkgvalidator "github.com/ghuser/grow/pkg/validator"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// PostBedsHandler handles POST /garden/beds requests.
type PostBedsHandler struct {
	svc *appsvcs.Services
}

// NewPostBedsHandler returns a PostBedsHandler backed by the given services.
func NewPostBedsHandler(svc *appsvcs.Services) *PostBedsHandler {
	return &PostBedsHandler{svc: svc}
}

// Execute creates numberOfBeds identical beds with indices 1..numberOfBeds.
//
//	@Summary		Create beds
//	@Description	Creates several beds with the same dimensions, numbered from 1. Fails if those indices are already in use.
//	@Tags			garden
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BedCreationRequest	true	"Bed batch"
//	@Success		201		{object}	BedCreationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/garden/beds [post]
func (h *PostBedsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BedCreationRequest](w, r)
	if !ok {
		return
	}

	beds, err := h.svc.Bed.CreateBeds(r.Context(), req.NumberOfBeds, req.Length, req.Width)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, BedCreationResponse{
		Beds:    toBedResponses(beds),
		Message: fmt.Sprintf("Successfully created %d beds", len(beds)),
	})
}
