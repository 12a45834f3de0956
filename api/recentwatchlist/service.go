package recentwatchlist

import (
	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"gorm.io/gorm"
)

type Service struct {
	repo *Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepository(db)}
}

// GetRecentWatchlist returns the user's most recent watchlist id, converting
// the no-watchlist case into a client-facing error
func (s *Service) GetRecentWatchlist(userID uuid.UUID) (GetRecentWatchlistResponse, error) {
	resp, err := s.repo.GetRecentWatchlist(userID)
	if err != nil {
		return GetRecentWatchlistResponse{}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Failed to retrieve recent watchlist"
		}
		zaplogger.Error("Failed to retrieve recent watchlist", zaplogger.Fields{
			"userId":  userID.String(),
			"message": message,
		})
		return GetRecentWatchlistResponse{}, apierror.NewBadRequestError(message)
	}

	return resp, nil
}
