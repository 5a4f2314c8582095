package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mserjo/bossy/pkg/controller"

	"github.com/stretchr/testify/assert"
)

func corsHandler(origins []string) http.Handler {
	return controller.WithCORS(origins, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestWithCORS_AnyOrigin(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)

	corsHandler(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_AllowedOriginEchoed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)
	req.Header.Set("Origin", "https://bossy.example.com")

	corsHandler([]string{"https://bossy.example.com"}).ServeHTTP(rec, req)

	assert.Equal(t, "https://bossy.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_UnknownOriginNotEchoed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/groups", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	corsHandler([]string{"https://bossy.example.com"}).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_Preflight(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/groups", nil)

	corsHandler(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
