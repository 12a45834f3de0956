package watchlist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreateWatchlist(t *testing.T) {
	svc := NewService(newTestDB(t))

	resp, err := svc.CreateWatchlist(uuid.New(), sampleSymbols())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Watchlist created successfully", resp.Message)
}

func TestServiceDeleteWatchlistNotFoundIsBadRequest(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.DeleteWatchlist(uuid.New(), uuid.New())
	require.Error(t, err)

	var badRequest *apierror.BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Watchlist not found or already deleted", badRequest.Message)
}

func TestServiceUpdateWatchlistNotFoundIsBadRequest(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.UpdateWatchlist(uuid.New(), uuid.New(), sampleSymbols())
	require.Error(t, err)

	var badRequest *apierror.BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Watchlist not found or symbols not updated", badRequest.Message)
}

func TestServiceGetAllWatchlistEmptyIsNotFound(t *testing.T) {
	svc := NewService(newTestDB(t))

	_, err := svc.GetAllWatchlist(uuid.New())
	require.Error(t, err)

	var notFound *apierror.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No watchlist found", notFound.Message)
}

func TestServiceGetAllWatchlist(t *testing.T) {
	svc := NewService(newTestDB(t))
	userID := uuid.New()

	_, err := svc.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)

	watchlists, err := svc.GetAllWatchlist(userID)
	require.NoError(t, err)
	assert.Len(t, watchlists, 1)
}
