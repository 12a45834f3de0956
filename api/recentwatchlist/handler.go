package recentwatchlist

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetRecentWatchlist handles GET /recent-watchlist/:userId
func (h *Handler) GetRecentWatchlist(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid user ID")
	}

	zaplogger.Info("Received GET request to retrieve recent watchlist", zaplogger.Fields{
		"userId": userID.String(),
	})

	resp, err := h.service.GetRecentWatchlist(userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
