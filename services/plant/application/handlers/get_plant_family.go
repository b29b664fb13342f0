package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/plant/application/services"
)

// GetPlantFamilyHandler handles GET /plants/families/{familyID} requests.
type GetPlantFamilyHandler struct {
	svc *appsvcs.Services
}

// NewGetPlantFamilyHandler returns a GetPlantFamilyHandler backed by the given services.
func NewGetPlantFamilyHandler(svc *appsvcs.Services) *GetPlantFamilyHandler {
	return &GetPlantFamilyHandler{svc: svc}
}

// Execute returns one plant family.
//
//	@Summary	Get plant family
//	@Tags		plants
//	@Produce	json
//	@Param		familyID	path		string	true	"Plant family ID"
//	@Success	200			{object}	PlantFamilyResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/plants/families/{familyID} [get]
func (h *GetPlantFamilyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := familyIDParam(w, r)
	if !ok {
		return
	}

	family, err := h.svc.PlantFamily.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPlantFamilyResponse(family))
}
