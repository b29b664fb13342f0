package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
	gardendomain "github.com/ghuser/grow/services/garden/domain"
)

// DeleteBedHandler handles DELETE /garden/beds/{bedID} requests.
type DeleteBedHandler struct {
	svc *appsvcs.Services
}

// NewDeleteBedHandler returns a DeleteBedHandler backed by the given services.
func NewDeleteBedHandler(svc *appsvcs.Services) *DeleteBedHandler {
	return &DeleteBedHandler{svc: svc}
}

// Execute deletes one bed. Other beds keep their indices.
//
//	@Summary	Delete bed
//	@Tags		garden
//	@Produce	json
//	@Param		bedID	path		string	true	"Bed ID"
//	@Success	200		{object}	MessageResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/garden/beds/{bedID} [delete]
func (h *DeleteBedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := bedIDParam(w, r)
	if !ok {
		return
	}

	deleted, err := h.svc.Bed.DeleteBed(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !deleted {
		errhttp.WriteError(w, fmt.Errorf("bed %s: %w", id, gardendomain.ErrBedNotFound))
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Bed %s deleted successfully", id)})
}
