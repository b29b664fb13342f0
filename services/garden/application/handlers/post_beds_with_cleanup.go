package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	pkgvalidator "github.com/ghuser/grow/pkg/validator"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// PostBedsWithCleanupHandler handles POST /garden/beds/with-cleanup requests.
type PostBedsWithCleanupHandler struct {
	svc *appsvcs.Services
}

// NewPostBedsWithCleanupHandler returns a PostBedsWithCleanupHandler backed by the given services.
func NewPostBedsWithCleanupHandler(svc *appsvcs.Services) *PostBedsWithCleanupHandler {
	return &PostBedsWithCleanupHandler{svc: svc}
}

// Execute replaces the whole bed collection in one transaction.
//
//	@Summary		Replace all beds
//	@Description	Deletes every bed and creates numberOfBeds new ones numbered from 1, atomically.
//	@Tags			garden
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BedCreationRequest	true	"Bed batch"
//	@Success		201		{object}	BedCreationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/garden/beds/with-cleanup [post]
func (h *PostBedsWithCleanupHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BedCreationRequest](w, r)
	if !ok {
		return
	}

	beds, err := h.svc.Bed.ReplaceBeds(r.Context(), req.NumberOfBeds, req.Length, req.Width)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, BedCreationResponse{
		Beds:    toBedResponses(beds),
		Message: fmt.Sprintf("Successfully created %d beds", len(beds)),
	})
}
