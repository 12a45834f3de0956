package recentwatchlist

import (
	"errors"

	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/api/watchlist"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"gorm.io/gorm"
)

// GetRecentWatchlistResponse reports the most recent watchlist of a user
type GetRecentWatchlistResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	RecentWatchlistID *string `json:"recentWatchlistId"`
}

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// GetRecentWatchlist derives the most recent watchlist from the watchlist
// table itself: newest live row by created_at. The recent_watchlist pointer
// table is bookkeeping only and is not consulted here.
func (r *Repository) GetRecentWatchlist(userID uuid.UUID) (GetRecentWatchlistResponse, error) {
	zaplogger.Info("Attempting to retrieve the most recent watchlist", zaplogger.Fields{
		"userId": userID.String(),
	})

	var row watchlist.WatchlistModel
	err := r.DB.Select("id").
		Where("user_id = ? AND is_delete = ?", userID.String(), false).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			zaplogger.Info("No recent watchlist found for the user", zaplogger.Fields{
				"userId": userID.String(),
			})
			return GetRecentWatchlistResponse{
				Success: false,
				Message: "No recent watchlist found for the user",
			}, nil
		}
		zaplogger.Error("Failed to retrieve recent watchlist", zaplogger.Fields{
			"userId": userID.String(),
			"error":  err.Error(),
		})
		return GetRecentWatchlistResponse{}, apierror.NewStoreError("Failed to retrieve recent watchlist", err)
	}

	recentID := row.ID
	zaplogger.Info("Retrieved the most recent watchlist", zaplogger.Fields{
		"userId":      userID.String(),
		"watchlistId": recentID,
	})
	return GetRecentWatchlistResponse{
		Success:           true,
		Message:           "Recent watchlist retrieved successfully",
		RecentWatchlistID: &recentID,
	}, nil
}
