package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/plant/application/services"
)

// DeletePlantFamilyHandler handles DELETE /plants/families/{familyID} requests.
type DeletePlantFamilyHandler struct {
	svc *appsvcs.Services
}

// NewDeletePlantFamilyHandler returns a DeletePlantFamilyHandler backed by the given services.
func NewDeletePlantFamilyHandler(svc *appsvcs.Services) *DeletePlantFamilyHandler {
	return &DeletePlantFamilyHandler{svc: svc}
}

// Execute deletes a plant family and detaches it from every bed.
//
//	@Summary	Delete plant family
//	@Tags		plants
//	@Produce	json
//	@Param		familyID	path		string	true	"Plant family ID"
//	@Success	200			{object}	MessageResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/plants/families/{familyID} [delete]
func (h *DeletePlantFamilyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := familyIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.PlantFamily.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Plant family %s deleted successfully", id)})
}
