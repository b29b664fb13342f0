package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/plant/application/services"
)

// GetPlantFamiliesHandler handles GET /plants/families requests.
type GetPlantFamiliesHandler struct {
	svc *appsvcs.Services
}

// NewGetPlantFamiliesHandler returns a GetPlantFamiliesHandler backed by the given services.
func NewGetPlantFamiliesHandler(svc *appsvcs.Services) *GetPlantFamiliesHandler {
	return &GetPlantFamiliesHandler{svc: svc}
}

// Execute lists plant families ordered by name.
//
//	@Summary	List plant families
//	@Tags		plants
//	@Produce	json
//	@Success	200	{array}		PlantFamilyResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/plants/families [get]
func (h *GetPlantFamiliesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	families, err := h.svc.PlantFamily.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]PlantFamilyResponse, len(families))
	for i, f := range families {
		resp[i] = toPlantFamilyResponse(f)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
