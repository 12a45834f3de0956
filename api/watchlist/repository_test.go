package watchlist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&WatchlistModel{}, &RecentWatchlistModel{}))
	return db
}

func sampleSymbols() []models.Symbol {
	return []models.Symbol{{
		Asset:       "EQUITY",
		Strike:      120.5,
		LotSize:     25,
		TickSize:    0.05,
		StreamSym:   "NSE:INFY",
		Instrument:  "EQ",
		Multiplier:  1,
		DisplayName: "INFY",
		CompanyName: "Infosys Ltd",
		Expiry:      "2026-12-31",
		SymbolTag:   "IT",
		Sector:      "Technology",
		Exchange:    "NSE",
		IsIn:        "INE009A01021",
		BaseSymbol:  "INFY",
	}}
}

// createdWatchlistID returns the id of the user's single live watchlist row
func createdWatchlistID(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()
	var row WatchlistModel
	require.NoError(t, db.Where("user_id = ?", userID.String()).First(&row).Error)
	id, err := uuid.Parse(row.ID)
	require.NoError(t, err)
	return id
}

func TestCreateWatchlist(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	resp, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Watchlist created successfully", resp.Message)

	var row WatchlistModel
	require.NoError(t, db.Where("user_id = ?", userID.String()).First(&row).Error)
	assert.False(t, row.IsDelete)
	assert.Equal(t, row.CreatedAt, row.UpdatedAt)
	assert.Contains(t, string(row.Symbols), `"asset":"EQUITY"`)
}

func TestCreateWatchlistWritesPointerRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	var pointers []RecentWatchlistModel
	require.NoError(t, db.Find(&pointers).Error)
	require.Len(t, pointers, 1)
	assert.Equal(t, watchlistID.String(), pointers[0].WatchlistID)
	assert.Equal(t, userID.String(), pointers[0].UserID)
	assert.Len(t, pointers[0].ID, 36)
}

func TestCreateWatchlistPointerLogIsAppendOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	_, err = repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&RecentWatchlistModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDeleteWatchlistNotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	resp, err := repo.DeleteWatchlist(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Watchlist not found or already deleted", resp.Message)
}

func TestDeleteWatchlistSoftDeletesAndPrunesPointers(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	resp, err := repo.DeleteWatchlist(userID, watchlistID)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Watchlist deleted successfully", resp.Message)

	// row retained, flag flipped
	var row WatchlistModel
	require.NoError(t, db.Where("id = ?", watchlistID.String()).First(&row).Error)
	assert.True(t, row.IsDelete)

	// pointer rows removed
	var count int64
	require.NoError(t, db.Model(&RecentWatchlistModel{}).
		Where("watchlist_id = ?", watchlistID.String()).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteWatchlistWrongUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	resp, err := repo.DeleteWatchlist(uuid.New(), watchlistID)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Watchlist not found or already deleted", resp.Message)
}

func TestDeleteWatchlistTwice(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	_, err = repo.DeleteWatchlist(userID, watchlistID)
	require.NoError(t, err)

	// the lookup does not filter on is_delete, so the row is found again
	resp, err := repo.DeleteWatchlist(userID, watchlistID)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestUpdateWatchlistNotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	resp, err := repo.UpdateWatchlist(uuid.New(), uuid.New(), sampleSymbols())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Watchlist not found or symbols not updated", resp.Message)
}

func TestUpdateWatchlistLeavesOtherRowsUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	var before WatchlistModel
	require.NoError(t, db.Where("id = ?", watchlistID.String()).First(&before).Error)

	resp, err := repo.UpdateWatchlist(userID, uuid.New(), sampleSymbols())
	require.NoError(t, err)
	assert.False(t, resp.Success)

	var after WatchlistModel
	require.NoError(t, db.Where("id = ?", watchlistID.String()).First(&after).Error)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	assert.Equal(t, string(before.Symbols), string(after.Symbols))
}

func TestUpdateWatchlistReplacesSymbols(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	updated := sampleSymbols()
	updated[0].Asset = "FUTURES"

	resp, err := repo.UpdateWatchlist(userID, watchlistID, updated)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Symbols within the watchlist updated successfully", resp.Message)

	var row WatchlistModel
	require.NoError(t, db.Where("id = ?", watchlistID.String()).First(&row).Error)
	assert.Contains(t, string(row.Symbols), `"asset":"FUTURES"`)
	assert.NotEqual(t, row.CreatedAt, row.UpdatedAt)
}

func TestGetAllWatchlistEmpty(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	watchlists, err := repo.GetAllWatchlist(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, watchlists)
}

func TestGetAllWatchlistProjection(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	watchlists, err := repo.GetAllWatchlist(userID)
	require.NoError(t, err)
	require.Len(t, watchlists, 1)
	// the projection's userId field carries the watchlist id
	assert.Equal(t, watchlistID.String(), watchlists[0].UserID)
	assert.NotEmpty(t, watchlists[0].CreatedAt)
	assert.NotEmpty(t, watchlists[0].UpdatedAt)
}

func TestGetAllWatchlistExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	_, err := repo.CreateWatchlist(userID, sampleSymbols())
	require.NoError(t, err)
	watchlistID := createdWatchlistID(t, db, userID)

	_, err = repo.DeleteWatchlist(userID, watchlistID)
	require.NoError(t, err)

	watchlists, err := repo.GetAllWatchlist(userID)
	require.NoError(t, err)
	assert.Empty(t, watchlists)
}
