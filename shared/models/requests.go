// Package models holds the request payload shapes shared by the route
// handlers and the validation helpers.
package models

// Symbol is a tradable instrument's static metadata, stored verbatim inside
// a watchlist.
type Symbol struct {
	Asset       string  `json:"asset"`
	Strike      float64 `json:"strike"`
	LotSize     int     `json:"lotSize"`
	TickSize    float64 `json:"tickSize"`
	StreamSym   string  `json:"streamSym"`
	Instrument  string  `json:"instrument"`
	Multiplier  float64 `json:"multiplier"`
	DisplayName string  `json:"displayName"`
	CompanyName string  `json:"companyName"`
	Expiry      string  `json:"expiry"`
	OptionChain bool    `json:"optionChain"`
	SymbolTag   string  `json:"symbolTag"`
	Sector      string  `json:"sector"`
	Exchange    string  `json:"exchange"`
	IsIn        string  `json:"isIn"`
	BaseSymbol  string  `json:"baseSymbol"`
}

// UserRegistration is the POST /users payload
type UserRegistration struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WatchlistCreation is the POST /watchlist payload
type WatchlistCreation struct {
	UserID  string   `json:"userId"`
	Symbols []Symbol `json:"symbols"`
}

// UpdateWatchlist is the PUT /watchlist payload
type UpdateWatchlist struct {
	UserID      string   `json:"userId"`
	WatchlistID string   `json:"watchlistId"`
	Symbols     []Symbol `json:"symbols"`
}

// DeleteWatchlist is the DELETE /watchlist payload
type DeleteWatchlist struct {
	UserID      string `json:"userId"`
	WatchlistID string `json:"watchlistId"`
}

// RecentWatchlist is a recent-watchlist pointer payload
type RecentWatchlist struct {
	ID          string `json:"id"`
	WatchListID string `json:"watchListId"`
	UserID      string `json:"userId"`
}
