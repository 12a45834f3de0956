package user

import (
	"net/http"

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

// GetUsers handles GET /users
func (h *Handler) GetUsers(c echo.Context) error {
	zaplogger.Info("Received GET request to retrieve all users")

	users, err := h.service.GetAllUsers()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(c echo.Context) error {
	var req models.UserRegistration
	if err := c.Bind(&req); err != nil {
		return apierror.NewBadRequestError("Invalid request body")
	}

	if err := validation.ValidateUserRegistration(req); err != nil {
		return err
	}

	zaplogger.Info("POST request to create a user", zaplogger.Fields{"username": req.Username})

	resp, err := h.service.CreateUser(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}
