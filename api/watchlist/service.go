package watchlist

import (
	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"github.com/marketpulse/watchlistapi/shared/models"
	"gorm.io/gorm"
)

type Service struct {
	repo *Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepository(db)}
}

// CreateWatchlist creates a watchlist for the user
func (s *Service) CreateWatchlist(userID uuid.UUID, symbols []models.Symbol) (WatchlistResponse, error) {
	resp, err := s.repo.CreateWatchlist(userID, symbols)
	if err != nil {
		return WatchlistResponse{}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Watchlist creation failed"
		}
		zaplogger.Error("Watchlist creation failed", zaplogger.Fields{"message": message})
		return WatchlistResponse{}, apierror.NewBadRequestError(message)
	}

	return resp, nil
}

// DeleteWatchlist soft-deletes the user's watchlist
func (s *Service) DeleteWatchlist(userID, watchlistID uuid.UUID) (WatchlistResponse, error) {
	resp, err := s.repo.DeleteWatchlist(userID, watchlistID)
	if err != nil {
		return WatchlistResponse{}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Watchlist deletion failed"
		}
		zaplogger.Error("Watchlist deletion failed", zaplogger.Fields{"message": message})
		return WatchlistResponse{}, apierror.NewBadRequestError(message)
	}

	return resp, nil
}

// UpdateWatchlist replaces the symbols of the user's watchlist
func (s *Service) UpdateWatchlist(userID, watchlistID uuid.UUID, symbols []models.Symbol) (WatchlistResponse, error) {
	resp, err := s.repo.UpdateWatchlist(userID, watchlistID, symbols)
	if err != nil {
		return WatchlistResponse{}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Watchlist update failed"
		}
		zaplogger.Error("Watchlist update failed", zaplogger.Fields{"message": message})
		return WatchlistResponse{}, apierror.NewBadRequestError(message)
	}

	return resp, nil
}

// GetAllWatchlist returns the user's live watchlists, raising NotFound when
// there are none
func (s *Service) GetAllWatchlist(userID uuid.UUID) ([]Watchlist, error) {
	watchlists, err := s.repo.GetAllWatchlist(userID)
	if err != nil {
		return nil, err
	}

	if len(watchlists) == 0 {
		zaplogger.Warn("No watchlist found", zaplogger.Fields{"userId": userID.String()})
		return nil, apierror.NewNotFoundError("No watchlist found")
	}

	return watchlists, nil
}
