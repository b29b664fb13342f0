package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// GetBedHandler handles GET /garden/beds/{bedID} requests.
type GetBedHandler struct {
	svc *appsvcs.Services
}

// NewGetBedHandler returns a GetBedHandler backed by the given services.
func NewGetBedHandler(svc *appsvcs.Services) *GetBedHandler {
	return &GetBedHandler{svc: svc}
}

// Execute returns one bed.
//
//	@Summary	Get bed
//	@Tags		garden
//	@Produce	json
//	@Param		bedID	path		string	true	"Bed ID"
//	@Success	200		{object}	BedResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/garden/beds/{bedID} [get]
func (h *GetBedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := bedIDParam(w, r)
	if !ok {
		return
	}

	bed, err := h.svc.Bed.GetBed(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBedResponse(bed))
}
