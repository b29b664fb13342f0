package handlers

import (
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	pkgvalidator "github.com/ghuser/grow/pkg/validator"
	appsvcs "github.com/ghuser/grow/services/plant/application/services"
)

// PostPlantFamilyHandler handles POST /plants/families requests.
type PostPlantFamilyHandler struct {
	svc *appsvcs.Services
}

// NewPostPlantFamilyHandler returns a PostPlantFamilyHandler backed by the given services.
func NewPostPlantFamilyHandler(svc *appsvcs.Services) *PostPlantFamilyHandler {
	return &PostPlantFamilyHandler{svc: svc}
}

// Execute creates a plant family.
//
//	@Summary	Create plant family
//	@Tags		plants
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePlantFamilyRequest	true	"Plant family"
//	@Success	201		{object}	PlantFamilyResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/plants/families [post]
func (h *PostPlantFamilyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreatePlantFamilyRequest](w, r)
	if !ok {
		return
	}

	family, err := h.svc.PlantFamily.Create(r.Context(), req.Name, req.NutritionRequirements, req.RotationTime)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toPlantFamilyResponse(family))
}
