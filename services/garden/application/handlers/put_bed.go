package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	pkgvalidator "github.com/ghuser/grow/pkg/validator"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// PutBedHandler handles PUT /garden/beds/{bedID} requests.
type PutBedHandler struct {
	svc *appsvcs.Services
}

// NewPutBedHandler returns a PutBedHandler backed by the given services.
func NewPutBedHandler(svc *appsvcs.Services) *PutBedHandler {
	return &PutBedHandler{svc: svc}
}

// Execute changes a bed's length and width.
//
//	@Summary		Update bed
//	@Description	Updates length and width. The bed keeps its id, index and plant families.
//	@Tags			garden
//	@Accept			json
//	@Produce		json
//	@Param			bedID	path		string					true	"Bed ID"
//	@Param			request	body		BedDimensionsRequest	true	"New dimensions"
//	@Success		200		{object}	BedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/garden/beds/{bedID} [put]
func (h *PutBedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := bedIDParam(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[BedDimensionsRequest](w, r)
	if !ok {
		return
	}

	bed, err := h.svc.Bed.UpdateBed(r.Context(), id, req.Length, req.Width)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBedResponse(bed))
}
