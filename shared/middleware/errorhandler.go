package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
)

// RouteNotFoundMessage is the body served for unmatched routes
const RouteNotFoundMessage = "Oops! It seems the page you're looking for cannot be found."

// HTTPErrorHandler maps the error taxonomy onto HTTP responses:
// store errors and expected negative outcomes become 400s, validation
// failures become 400s carrying the joined reasons, empty-collection
// not-found errors become 204s, unmatched routes become a fixed 404.
// Wire it with e.HTTPErrorHandler = middleware.HTTPErrorHandler.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		storeErr      *apierror.StoreError
		validationErr *apierror.ValidationError
		notFoundErr   *apierror.NotFoundError
		badRequestErr *apierror.BadRequestError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &storeErr):
		zaplogger.Error("Database error", zaplogger.Fields{
			"message": storeErr.Message,
			"cause":   fmt.Sprintf("%v", storeErr.Unwrap()),
		})
		_ = c.String(http.StatusBadRequest, "Data Base Error: "+storeErr.Message)

	case errors.As(err, &validationErr):
		_ = c.JSON(http.StatusBadRequest, strings.Join(validationErr.Reasons, ", "))

	case errors.As(err, &notFoundErr):
		_ = c.String(http.StatusNoContent, notFoundErr.Message)

	case errors.As(err, &badRequestErr):
		_ = c.String(http.StatusBadRequest, badRequestErr.Message)

	case errors.As(err, &httpErr):
		if httpErr.Code == http.StatusNotFound {
			_ = c.String(http.StatusNotFound, RouteNotFoundMessage)
			return
		}
		_ = c.String(httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

	default:
		zaplogger.Error("Unhandled error", zaplogger.Fields{"error": err.Error()})
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
