package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reservas/models"
	"reservas/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct {
	services []models.AgencyService
	err      error
}

func (s *stubCatalog) LoadActive() ([]models.AgencyService, error) { return s.services, s.err }
func (s *stubCatalog) Invalidate()                                 {}

func bookableService(id string, priority int) models.AgencyService {
	return models.AgencyService{
		ID:            id,
		AgencyID:      "agency-" + id,
		AgencyName:    "Agency " + id,
		Title:         "Guided visit " + id,
		Active:        true,
		PriceAdult:    25,
		PriorityOrder: priority,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Schedule: models.Schedule{
			models.Monday: {Mode: models.ModeRecurring, Slots: []models.TimeOfDay{{Hour: 10}}},
		},
	}
}

func availabilityRouter(catalog availability.Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(catalog, availability.NewResolver(zap.NewNop()), zap.NewNop())
	r := gin.New()
	r.POST("/api/booking/available-services", h.GetAvailableServices)
	return r
}

func postQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/available-services", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailableServicesRanked(t *testing.T) {
	catalog := &stubCatalog{services: []models.AgencyService{
		bookableService("b", 2),
		bookableService("a", 1),
	}}
	r := availabilityRouter(catalog)

	w := postQuery(t, r, `{"date":"2024-01-08","time":"10:00:00"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out []models.AvailableService
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ServiceID)
	assert.Equal(t, "Agency a", out[0].AgencyName)
	assert.Equal(t, "b", out[1].ServiceID)
}

func TestGetAvailableServicesEmptyIsOK(t *testing.T) {
	r := availabilityRouter(&stubCatalog{})

	w := postQuery(t, r, `{"date":"2024-01-09","time":"10:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetAvailableServicesBadQuery(t *testing.T) {
	r := availabilityRouter(&stubCatalog{})

	w := postQuery(t, r, `{"date":"someday","time":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postQuery(t, r, `{"date":"2024-01-08"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing time must fail binding")
}

func TestGetAvailableServicesCatalogFailure(t *testing.T) {
	r := availabilityRouter(&stubCatalog{err: errors.New("mongo down")})

	w := postQuery(t, r, `{"date":"2024-01-08","time":"10:00"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
