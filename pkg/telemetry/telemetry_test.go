package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/ghuser/grow/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "test-service",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
		StorageDriver:  config.DriverMemory,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NotNil(t, handler)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_InstallsPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestSetup_MetricsHandlerServesBedCounters(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	m, err := NewBedMetrics()
	require.NoError(t, err)
	m.Created(context.Background(), "batch", 3)
	m.Deleted(context.Background(), "all", 3)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "grow_beds_created"), string(body))
	assert.True(t, strings.Contains(string(body), `operation="batch"`), string(body))
}

func TestBedMetrics_NilIsNoop(t *testing.T) {
	var m *BedMetrics
	assert.NotPanics(t, func() {
		m.Created(context.Background(), "single", 1)
		m.Deleted(context.Background(), "single", 1)
	})
}

func TestSamplerFor(t *testing.T) {
	assert.Contains(t, samplerFor(config.EnvProduction).Description(), "TraceIDRatioBased")
	assert.Equal(t, "AlwaysOnSampler", samplerFor(config.EnvDevelopment).Description())
}
