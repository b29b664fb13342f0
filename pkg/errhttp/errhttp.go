// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/grow/pkg/httpx"
	gardendomain "github.com/ghuser/grow/services/garden/domain"
	plantdomain "github.com/ghuser/grow/services/plant/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors controls whether 5xx responses carry the error text or
// only the generic status text. Enable it in production.
func HideInternalErrors(hide bool) {
	hideInternal.Store(hide)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, gardendomain.ErrBedNotFound),
		errors.Is(err, plantdomain.ErrPlantFamilyNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, gardendomain.ErrBedIndexConflict),
		errors.Is(err, plantdomain.ErrPlantFamilyAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, gardendomain.ErrInvalidBedDimensions),
		errors.Is(err, gardendomain.ErrInvalidBedCount),
		errors.Is(err, plantdomain.ErrInvalidPlantFamily):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
