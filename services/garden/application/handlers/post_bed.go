package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	pkgvalidator "github.com/ghuser/grow/pkg/validator"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// PostBedHandler handles POST /garden/beds/single requests.
type PostBedHandler struct {
	svc *appsvcs.Services
}

// NewPostBedHandler returns a PostBedHandler backed by the given services.
func NewPostBedHandler(svc *appsvcs.Services) *PostBedHandler {
	return &PostBedHandler{svc: svc}
}

// Execute appends one bed after the highest existing index.
//
//	@Summary		Create one bed
//	@Description	Creates a bed whose index is one more than the current highest index.
//	@Tags			garden
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BedDimensionsRequest	true	"Bed dimensions"
//	@Success		201		{object}	BedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/garden/beds/single [post]
func (h *PostBedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BedDimensionsRequest](w, r)
	if !ok {
		return
	}

	bed, err := h.svc.Bed.CreateBed(r.Context(), req.Length, req.Width)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toBedResponse(bed))
}
