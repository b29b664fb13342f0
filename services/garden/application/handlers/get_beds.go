package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// GetBedsHandler handles GET /garden/beds requests.
type GetBedsHandler struct {
	svc *appsvcs.Services
}

// NewGetBedsHandler returns a GetBedsHandler backed by the given services.
func NewGetBedsHandler(svc *appsvcs.Services) *GetBedsHandler {
	return &GetBedsHandler{svc: svc}
}

// Execute lists every bed.
//
//	@Summary	List beds
//	@Tags		garden
//	@Produce	json
//	@Success	200	{array}		BedResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/garden/beds [get]
func (h *GetBedsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	beds, err := h.svc.Bed.ListBeds(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBedResponses(beds))
}
