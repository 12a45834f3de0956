// Package services holds the scheduled maintenance jobs
package services

import (
	"time"

	"github.com/marketpulse/watchlistapi/api/watchlist"
	"github.com/marketpulse/watchlistapi/config"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type CronService struct {
	cfg *config.Config
	db  *gorm.DB
	c   *cron.Cron
}

func NewCronService(cfg *config.Config, db *gorm.DB) *CronService {
	return &CronService{
		cfg: cfg,
		db:  db,
		c:   cron.New(),
	}
}

func (cs *CronService) Start() {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing CronService")

	// Scheduled jobs
	cs.addScheduledJob("Recent Watchlist Prune Job", cs.recentWatchlistPruneJob, "0 3 * * *") // Once at 03:00am, daily

	// Startup jobs
	cs.addStartupJob("Table Stats Job", cs.tableStatsJob, 5*time.Second)

	cs.c.Start()
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("Executing scheduled job", zaplogger.Fields{
			"job":  name,
			"time": time.Now().Format("15:04:05"),
		})
		job()
	})
	if err != nil {
		zaplogger.Error("Failed to schedule job", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("  * Scheduled job added: " + name)
}

func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("Executing startup job", zaplogger.Fields{
			"job":  name,
			"time": time.Now().Format("15:04:05"),
		})
		job()
	}()
	zaplogger.Info("  * Startup job queued : " + name)
}

// recentWatchlistPruneJob removes pointer rows referencing soft-deleted
// watchlists. Deletion prunes its own pointers in-transaction, so this only
// sweeps up rows orphaned by data written before that behavior existed.
func (cs *CronService) recentWatchlistPruneJob() {
	res := cs.db.Exec(
		"DELETE FROM " + watchlist.RecentWatchlistTableName +
			" WHERE watchlist_id IN (SELECT id FROM " + watchlist.WatchlistTableName + " WHERE is_delete = true)",
	)
	if res.Error != nil {
		zaplogger.Error("Recent watchlist prune failed", zaplogger.Fields{"error": res.Error.Error()})
		return
	}
	zaplogger.Info("Recent watchlist prune completed", zaplogger.Fields{"pruned": res.RowsAffected})
}

// tableStatsJob logs row counts for the domain tables
func (cs *CronService) tableStatsJob() {
	var users, watchlists, pointers int64
	cs.db.Table("users").Count(&users)
	cs.db.Table(watchlist.WatchlistTableName).Count(&watchlists)
	cs.db.Table(watchlist.RecentWatchlistTableName).Count(&pointers)

	zaplogger.Info("Table stats", zaplogger.Fields{
		"users":            users,
		"watchlist":        watchlists,
		"recent_watchlist": pointers,
	})
}
