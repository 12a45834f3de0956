package watchlist

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/pkg/utils/validation"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"github.com/marketpulse/watchlistapi/shared/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateWatchlist handles POST /watchlist
func (h *Handler) CreateWatchlist(c echo.Context) error {
	var req models.WatchlistCreation
	if err := c.Bind(&req); err != nil {
		return apierror.NewBadRequestError("Invalid request body")
	}

	if err := validation.ValidateWatchlistCreation(req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid user ID")
	}

	zaplogger.Info("Received POST request to create watchlist", zaplogger.Fields{"userId": req.UserID})

	resp, err := h.service.CreateWatchlist(userID, req.Symbols)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

// DeleteWatchlist handles DELETE /watchlist
func (h *Handler) DeleteWatchlist(c echo.Context) error {
	var req models.DeleteWatchlist
	if err := c.Bind(&req); err != nil {
		return apierror.NewBadRequestError("Invalid request body")
	}

	if err := validation.ValidateDeleteWatchlist(req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid user ID")
	}
	watchlistID, err := uuid.Parse(req.WatchlistID)
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid watchlist ID")
	}

	zaplogger.Info("DELETE request to delete a watchlist", zaplogger.Fields{
		"userId":      req.UserID,
		"watchlistId": req.WatchlistID,
	})

	resp, err := h.service.DeleteWatchlist(userID, watchlistID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusNoContent, resp)
}

// UpdateWatchlist handles PUT /watchlist
func (h *Handler) UpdateWatchlist(c echo.Context) error {
	var req models.UpdateWatchlist
	if err := c.Bind(&req); err != nil {
		return apierror.NewBadRequestError("Invalid request body")
	}

	if err := validation.ValidateUpdateWatchlist(req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid user ID")
	}
	watchlistID, err := uuid.Parse(req.WatchlistID)
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid watchlist ID")
	}

	zaplogger.Info("PUT request to update a watchlist", zaplogger.Fields{
		"userId":      req.UserID,
		"watchlistId": req.WatchlistID,
	})

	resp, err := h.service.UpdateWatchlist(userID, watchlistID, req.Symbols)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// GetAllWatchlist handles GET /watchlist/:userId
func (h *Handler) GetAllWatchlist(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Please provide a valid user ID")
	}

	zaplogger.Info("Received GET request to retrieve all watchlist", zaplogger.Fields{
		"userId": userID.String(),
	})

	watchlists, err := h.service.GetAllWatchlist(userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, watchlists)
}
