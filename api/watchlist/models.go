package watchlist

import (
	"gorm.io/datatypes"
)

const (
	WatchlistTableName       = "watchlist"
	RecentWatchlistTableName = "recent_watchlist"
)

// WatchlistModel represents a row in the watchlist table. Deletion is
// logical: rows are never removed, is_delete is flipped instead.
type WatchlistModel struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string         `gorm:"column:user_id;type:uuid;index" json:"userId"`
	IsDelete  bool           `gorm:"column:is_delete" json:"isDelete"`
	CreatedAt string         `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt string         `gorm:"column:updated_at" json:"updatedAt"`
	Symbols   datatypes.JSON `gorm:"column:symbols" json:"symbols"`
}

func (WatchlistModel) TableName() string {
	return WatchlistTableName
}

// RecentWatchlistModel is an append-only pointer row written per watchlist
// creation and pruned on deletion. The most-recent lookup does not read it.
type RecentWatchlistModel struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	WatchlistID string `gorm:"column:watchlist_id;type:uuid;index" json:"watchlistId"`
	UserID      string `gorm:"column:user_id;type:uuid;index" json:"userId"`
}

func (RecentWatchlistModel) TableName() string {
	return RecentWatchlistTableName
}

// Watchlist is the GET /watchlist/{userId} projection. The userId field
// carries the watchlist row id; deployed clients read it to learn which
// watchlists exist, so the name is kept as-is.
type Watchlist struct {
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// WatchlistResponse reports the outcome of a watchlist mutation
type WatchlistResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
