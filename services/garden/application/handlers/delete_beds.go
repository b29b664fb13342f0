package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/grow/pkg/errhttp"
	"github.com/ghuser/grow/pkg/httpx"
	appsvcs "github.com/ghuser/grow/services/garden/application/services"
)

// DeleteBedsHandler handles DELETE /garden/beds/all requests.
type DeleteBedsHandler struct {
	svc *appsvcs.Services
}

// NewDeleteBedsHandler returns a DeleteBedsHandler backed by the given services.
func NewDeleteBedsHandler(svc *appsvcs.Services) *DeleteBedsHandler {
	return &DeleteBedsHandler{svc: svc}
}

// Execute deletes every bed. The next bed created gets index 1.
//
//	@Summary	Delete all beds
//	@Tags		garden
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/garden/beds/all [delete]
func (h *DeleteBedsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Bed.DeleteAllBeds(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Successfully deleted %d beds", n)})
}
