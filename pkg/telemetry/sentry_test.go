package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/grow/pkg/config"
)

func TestSetupSentry_NoDSN(t *testing.T) {
	require.NoError(t, SetupSentry(baseConfig()))
}

func TestSentryOptions(t *testing.T) {
	cfg := baseConfig()
	cfg.SentryDSN = "https://key@sentry.example.com/1"
	cfg.ServiceVersion = "1.4.2"
	cfg.StorageDriver = config.DriverSQLite

	opts := sentryOptions(cfg)
	assert.Equal(t, "test-service@1.4.2", opts.Release)
	assert.Equal(t, config.EnvTesting, opts.Environment)
	assert.Equal(t, "test-service", opts.ServerName)
	assert.Equal(t, config.DriverSQLite, opts.Tags["storage_driver"])
	assert.Equal(t, 1.0, opts.TracesSampleRate)

	cfg.Environment = config.EnvProduction
	assert.Equal(t, productionSampleRatio, sentryOptions(cfg).TracesSampleRate)
}

func TestSentryMiddleware_Repanics(t *testing.T) {
	h := SentryMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
