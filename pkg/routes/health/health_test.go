package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ramsey-B/fern/pkg/datastore"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestLive(t *testing.T) {
	checker := NewChecker(datastore.NewStore(), "test")
	rec := request(t, checker.Live)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReady(t *testing.T) {
	checker := NewChecker(datastore.NewStore(), "test")

	rec := request(t, checker.Ready)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	checker.SetReady(true)
	rec = request(t, checker.Ready)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	checker := NewChecker(datastore.NewStore(), "1.2.3")
	rec := request(t, checker.Health)
	assert.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	require.Contains(t, status.Checks, "datastore")
	assert.Equal(t, "healthy", status.Checks["datastore"].Status)
}

func TestHealthWithoutStore(t *testing.T) {
	checker := NewChecker(nil, "test")
	rec := request(t, checker.Health)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
