package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/grow/pkg/app"
	"github.com/ghuser/grow/pkg/logger"
	"github.com/ghuser/grow/services/plant/application/handlers"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		PlantRoutes(r, &app.Application{Logger: logger.Discard()})
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPlantFamilyLifecycle(t *testing.T) {
	h := newRouter(t)

	w := do(t, h, http.MethodGet, "/api/plants/families", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	w = do(t, h, http.MethodPost, "/api/plants/families",
		`{"name":"Solanaceae","nutritionRequirements":"heavy feeder","rotationTime":4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created handlers.PlantFamilyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Solanaceae", created.Name)
	assert.Equal(t, 4, created.RotationTime)

	w = do(t, h, http.MethodPost, "/api/plants/families",
		`{"name":"Solanaceae","nutritionRequirements":"other","rotationTime":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodGet, "/api/plants/families/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var got handlers.PlantFamilyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	w = do(t, h, http.MethodDelete, "/api/plants/families/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var msg handlers.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, fmt.Sprintf("Plant family %s deleted successfully", created.ID), msg.Message)

	w = do(t, h, http.MethodDelete, "/api/plants/families/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePlantFamily_Validation(t *testing.T) {
	h := newRouter(t)
	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing name", `{"nutritionRequirements":"x","rotationTime":1}`, http.StatusUnprocessableEntity},
		{"blank nutrition", `{"name":"Apiaceae","nutritionRequirements":"  ","rotationTime":1}`, http.StatusUnprocessableEntity},
		{"negative rotation", `{"name":"Apiaceae","nutritionRequirements":"x","rotationTime":-2}`, http.StatusUnprocessableEntity},
		{"double space", `{"name":"Apia  ceae","nutritionRequirements":"x","rotationTime":1}`, http.StatusUnprocessableEntity},
		{"malformed json", `{"name":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/plants/families", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestPlantFamily_UnknownAndMalformedIDs(t *testing.T) {
	h := newRouter(t)
	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			w := do(t, h, method, "/api/plants/families/"+id, "")
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", method, id)
		}
	}
}
