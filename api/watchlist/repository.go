package watchlist

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"github.com/marketpulse/watchlistapi/shared/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// timestamp returns the created_at/updated_at value for a write
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// CreateWatchlist inserts a watchlist row and its recent-watchlist pointer
// row in one transaction; a failure of either insert rolls back both.
func (r *Repository) CreateWatchlist(userID uuid.UUID, symbols []models.Symbol) (WatchlistResponse, error) {
	zaplogger.Info("Creating a new watchlist", zaplogger.Fields{"userId": userID.String()})

	symbolsJSON, err := json.Marshal(symbols)
	if err != nil {
		return WatchlistResponse{}, apierror.NewStoreError("Failed to create watchlist", err)
	}

	now := timestamp()
	newWatchlist := WatchlistModel{
		ID:        uuid.NewString(),
		UserID:    userID.String(),
		IsDelete:  false,
		CreatedAt: now,
		UpdatedAt: now,
		Symbols:   datatypes.JSON(symbolsJSON),
	}

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newWatchlist).Error; err != nil {
			return err
		}
		pointer := RecentWatchlistModel{
			ID:          uuid.NewString(),
			WatchlistID: newWatchlist.ID,
			UserID:      newWatchlist.UserID,
		}
		return tx.Create(&pointer).Error
	})
	if err != nil {
		zaplogger.Error("Failed to create watchlist", zaplogger.Fields{
			"userId": userID.String(),
			"error":  err.Error(),
		})
		return WatchlistResponse{}, apierror.NewStoreError("Failed to create watchlist", err)
	}

	zaplogger.Info("Created a new watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": newWatchlist.ID,
	})
	return WatchlistResponse{Success: true, Message: "Watchlist created successfully"}, nil
}

// DeleteWatchlist soft-deletes the watchlist matching (id, userId) and
// removes its pointer rows, both in one transaction. The lookup does not
// filter on is_delete, so deleting an already-deleted row succeeds again.
func (r *Repository) DeleteWatchlist(userID, watchlistID uuid.UUID) (WatchlistResponse, error) {
	zaplogger.Info("Deleting watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": watchlistID.String(),
	})

	var found int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var row WatchlistModel
		res := tx.Where("id = ? AND user_id = ?", watchlistID.String(), userID.String()).
			Limit(1).Find(&row)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected
		if found == 0 {
			return nil
		}

		if err := tx.Model(&WatchlistModel{}).
			Where("id = ? AND user_id = ?", watchlistID.String(), userID.String()).
			Update("is_delete", true).Error; err != nil {
			return err
		}
		return tx.Where("watchlist_id = ?", watchlistID.String()).
			Delete(&RecentWatchlistModel{}).Error
	})
	if err != nil {
		zaplogger.Error("Failed to delete watchlist", zaplogger.Fields{
			"userId":      userID.String(),
			"watchlistId": watchlistID.String(),
			"error":       err.Error(),
		})
		return WatchlistResponse{}, apierror.NewStoreError("Failed to delete watchlist", err)
	}

	if found == 0 {
		zaplogger.Warn("Watchlist not found or already deleted", zaplogger.Fields{
			"userId":      userID.String(),
			"watchlistId": watchlistID.String(),
		})
		return WatchlistResponse{Success: false, Message: "Watchlist not found or already deleted"}, nil
	}

	zaplogger.Info("Deleted watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": watchlistID.String(),
	})
	return WatchlistResponse{Success: true, Message: "Watchlist deleted successfully"}, nil
}

// UpdateWatchlist replaces the symbols of the watchlist matching
// (id, userId) and refreshes updated_at
func (r *Repository) UpdateWatchlist(userID, watchlistID uuid.UUID, symbols []models.Symbol) (WatchlistResponse, error) {
	zaplogger.Info("Updating watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": watchlistID.String(),
	})

	symbolsJSON, err := json.Marshal(symbols)
	if err != nil {
		return WatchlistResponse{}, apierror.NewStoreError("Failed to update watchlist", err)
	}

	res := r.DB.Model(&WatchlistModel{}).
		Where("id = ? AND user_id = ?", watchlistID.String(), userID.String()).
		Updates(map[string]interface{}{
			"symbols":    datatypes.JSON(symbolsJSON),
			"updated_at": timestamp(),
		})
	if res.Error != nil {
		zaplogger.Error("Failed to update watchlist", zaplogger.Fields{
			"userId":      userID.String(),
			"watchlistId": watchlistID.String(),
			"error":       res.Error.Error(),
		})
		return WatchlistResponse{}, apierror.NewStoreError("Failed to update watchlist", res.Error)
	}

	if res.RowsAffected == 0 {
		zaplogger.Warn("Watchlist or symbols not updated", zaplogger.Fields{
			"userId":      userID.String(),
			"watchlistId": watchlistID.String(),
		})
		return WatchlistResponse{Success: false, Message: "Watchlist not found or symbols not updated"}, nil
	}

	zaplogger.Info("Updated watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": watchlistID.String(),
	})
	return WatchlistResponse{Success: true, Message: "Symbols within the watchlist updated successfully"}, nil
}

// GetAllWatchlist returns the live watchlists of a user, projected without
// symbols
func (r *Repository) GetAllWatchlist(userID uuid.UUID) ([]Watchlist, error) {
	var rows []WatchlistModel
	err := r.DB.Where("user_id = ? AND is_delete = ?", userID.String(), false).Find(&rows).Error
	if err != nil {
		zaplogger.Error("Failed to fetch watchlist for user", zaplogger.Fields{
			"userId": userID.String(),
			"error":  err.Error(),
		})
		return nil, apierror.NewStoreError("Failed to fetch watchlist for user", err)
	}

	watchlists := make([]Watchlist, 0, len(rows))
	for _, m := range rows {
		// the projection's userId field carries the row id, see Watchlist
		watchlists = append(watchlists, Watchlist{
			UserID:    m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}

	zaplogger.Info("Fetched watchlist for user", zaplogger.Fields{
		"userId": userID.String(),
		"count":  len(watchlists),
	})
	return watchlists, nil
}
