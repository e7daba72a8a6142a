package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/cutout-presign-backend/internal/infrastructure/observability"
)

func TestNewLogger(t *testing.T) {
	t.Run("builds json logger", func(t *testing.T) {
		logger, err := observability.NewLogger(config.LogConfig{Level: "debug", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("builds console logger", func(t *testing.T) {
		logger, err := observability.NewLogger(config.LogConfig{Level: "warn", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := observability.NewLogger(config.LogConfig{Level: "loud", Format: "json"})
		assert.Error(t, err)
	})
}

func TestMetrics(t *testing.T) {
	t.Run("nil metrics record nothing", func(t *testing.T) {
		var m *observability.Metrics
		assert.NotPanics(t, func() {
			m.ObservePresign("image", "ok")
			m.ObserveCORSReconcile("installed")
			m.ObserveRequest("/health", http.MethodGet, http.StatusOK, time.Millisecond)
		})
	})

	t.Run("exposes collected series", func(t *testing.T) {
		m := observability.NewMetrics()
		m.ObservePresign("image", "ok")
		m.ObservePresign("image", "ok")
		m.ObserveCORSReconcile("installed")
		m.ObserveRequest("/api/presign-image", http.MethodPost, http.StatusOK, 5*time.Millisecond)

		assert.Equal(t, float64(2), m.PresignCount("image", "ok"))
		assert.Equal(t, float64(1), m.CORSReconcileCount("installed"))

		srv := httptest.NewServer(m.Handler())
		defer srv.Close()

		resp, err := http.Get(srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `cutout_presign_requests_total{kind="image",outcome="ok"} 2`)
		assert.Contains(t, string(body), `cutout_http_requests_total{code="200",method="POST",route="/api/presign-image"} 1`)
	})
}
