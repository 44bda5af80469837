package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	health := decodeJSON[HealthResponse](t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Checks["database"])
	assert.NotEmpty(t, health.Time)
}

func TestPingEndpoint(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
