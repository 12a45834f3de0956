package recentwatchlist

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/shared/middleware"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	e := echo.New()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler

	h := NewHandler(NewService(db))
	e.GET("/recent-watchlist/:userId", h.GetRecentWatchlist)
	return e, db
}

func TestGetRecentWatchlistEndpoint(t *testing.T) {
	e, db := newTestServer(t)
	userID := uuid.New()

	watchlistID := seedWatchlist(t, db, userID, "2026-08-30T10:00:00.000000001Z", false)

	req := httptest.NewRequest(http.MethodGet, "/recent-watchlist/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), watchlistID.String())
	assert.Contains(t, rec.Body.String(), `"recentWatchlistId"`)
}

func TestGetRecentWatchlistEndpointNone(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/recent-watchlist/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No recent watchlist found for the user")
}

func TestGetRecentWatchlistEndpointBadParam(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/recent-watchlist/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide a valid user ID", rec.Body.String())
}
