package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mserjo/bossy/internal/api"
	"github.com/mserjo/bossy/pkg/logger"
)

func TestServer_RootEndpoints(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	srv, err := api.NewServer(api.Deps{}, api.Options{
		Addr:           ":0",
		MetricsPath:    "/metrics",
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		return rec
	}

	t.Run("healthz is served outside the versioned API", func(t *testing.T) {
		rec := get("/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", rec.Body.String())

		require.Equal(t, http.StatusNotFound, get("/v1/healthz").Code)
	})

	t.Run("metrics", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get("/metrics").Code)
	})

	t.Run("openapi document", func(t *testing.T) {
		rec := get("/specs/v1.yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	})
}
