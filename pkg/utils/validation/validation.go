// Package validation contains the pure request-payload validators. Each
// validator returns nil for a valid payload or a ValidationError carrying
// the first failing rule's reason.
package validation

import (
	"regexp"
	"strings"

	"github.com/marketpulse/watchlistapi/shared/apierror"
	"github.com/marketpulse/watchlistapi/shared/models"
)

const (
	UUIDLength        = 36
	MinUsernameLength = 5
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateUserRegistration checks the POST /users payload
func ValidateUserRegistration(req models.UserRegistration) error {
	switch {
	case isBlank(req.Username):
		return apierror.NewValidationError("Username must not be blank")
	case len(req.Username) < MinUsernameLength:
		return apierror.NewValidationError("Username must be at least 5 characters long")
	case len(req.Username) > MaxUsernameLength:
		return apierror.NewValidationError("Username must not exceed 50 characters")
	case isBlank(req.Password):
		return apierror.NewValidationError("Password must not be blank")
	case len(req.Password) < MinPasswordLength:
		return apierror.NewValidationError("Password must be at least 8 characters long")
	}
	return nil
}

// ValidateWatchlistCreation checks the POST /watchlist payload
func ValidateWatchlistCreation(req models.WatchlistCreation) error {
	if isBlank(req.UserID) {
		return apierror.NewValidationError("User ID must not be blank")
	}
	return validateSymbols(req.Symbols)
}

// ValidateUpdateWatchlist checks the PUT /watchlist payload
func ValidateUpdateWatchlist(req models.UpdateWatchlist) error {
	switch {
	case isBlank(req.UserID):
		return apierror.NewValidationError("userId must not be blank")
	case isBlank(req.WatchlistID):
		return apierror.NewValidationError("watchlistId must not be blank")
	case !uuidRegex.MatchString(req.UserID):
		return apierror.NewValidationError("Invalid userId format")
	case !uuidRegex.MatchString(req.WatchlistID):
		return apierror.NewValidationError("Invalid watchlistId format")
	}
	return validateSymbols(req.Symbols)
}

// ValidateDeleteWatchlist checks the DELETE /watchlist payload. The length
// check is a fast pre-check, redundant with the regex.
func ValidateDeleteWatchlist(req models.DeleteWatchlist) error {
	switch {
	case len(req.UserID) != UUIDLength:
		return apierror.NewValidationError("userId must be a valid UUID string of length 36")
	case len(req.WatchlistID) != UUIDLength:
		return apierror.NewValidationError("watchlistId must be a valid UUID string of length 36")
	case !uuidRegex.MatchString(req.UserID):
		return apierror.NewValidationError("Invalid UUID format for userId")
	case !uuidRegex.MatchString(req.WatchlistID):
		return apierror.NewValidationError("Invalid UUID format for watchlistId")
	}
	return nil
}

// ValidateRecentWatchlist checks a recent-watchlist pointer payload
func ValidateRecentWatchlist(req models.RecentWatchlist) error {
	switch {
	case len(req.ID) != UUIDLength:
		return apierror.NewValidationError("id must be a valid UUID string of length 36")
	case len(req.UserID) != UUIDLength:
		return apierror.NewValidationError("userId must be a valid UUID string of length 36")
	case len(req.WatchListID) != UUIDLength:
		return apierror.NewValidationError("watchlistId must be a valid UUID string of length 36")
	case !uuidRegex.MatchString(req.UserID):
		return apierror.NewValidationError("Invalid UUID format for userId")
	case !uuidRegex.MatchString(req.WatchListID):
		return apierror.NewValidationError("Invalid UUID format for watchlistId")
	case !uuidRegex.MatchString(req.ID):
		return apierror.NewValidationError("Invalid UUID format for id")
	}
	return nil
}

// validateSymbols checks every symbol in the list, first failing rule wins
func validateSymbols(symbols []models.Symbol) error {
	if len(symbols) == 0 {
		return apierror.NewValidationError("Symbols list must not be empty")
	}
	for _, s := range symbols {
		if isBlank(s.Asset) {
			return apierror.NewValidationError("Asset in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if s.Strike <= 0 {
			return apierror.NewValidationError("Strike in symbols must be greater than 0")
		}
	}
	for _, s := range symbols {
		if s.LotSize <= 0 {
			return apierror.NewValidationError("Lot size must be greater than 0")
		}
	}
	for _, s := range symbols {
		if s.TickSize <= 0 {
			return apierror.NewValidationError("Tick size must be greater than 0")
		}
	}
	for _, s := range symbols {
		if isBlank(s.StreamSym) {
			return apierror.NewValidationError("Stream symbol in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.Instrument) {
			return apierror.NewValidationError("Instrument in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if s.Multiplier <= 0 {
			return apierror.NewValidationError("Multiplier in symbols must be greater than 0")
		}
	}
	for _, s := range symbols {
		if isBlank(s.DisplayName) {
			return apierror.NewValidationError("Display name in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.CompanyName) {
			return apierror.NewValidationError("Company name in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.Expiry) {
			return apierror.NewValidationError("Expiry in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.SymbolTag) {
			return apierror.NewValidationError("Symbol tag in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.Sector) {
			return apierror.NewValidationError("Sector in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.Exchange) {
			return apierror.NewValidationError("Exchange in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.IsIn) {
			return apierror.NewValidationError("ISIN in symbols must not be blank")
		}
	}
	for _, s := range symbols {
		if isBlank(s.BaseSymbol) {
			return apierror.NewValidationError("Base symbol in symbols must not be blank")
		}
	}
	return nil
}
