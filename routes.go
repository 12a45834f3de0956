// Package main is the entry point for the Watchlist API
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/api/recentwatchlist"
	"github.com/marketpulse/watchlistapi/api/user"
	"github.com/marketpulse/watchlistapi/api/watchlist"
	"github.com/marketpulse/watchlistapi/config"
	"gorm.io/gorm"
)

// setupRoutes configures the routes for the API
func setupRoutes(e *echo.Echo, db *gorm.DB) {

	// Index route
	e.GET("/", indexRoute)

	// User routes
	userService := user.NewService(db)
	userHandler := user.NewHandler(userService)
	userGroup := e.Group("/users")
	userGroup.GET("", userHandler.GetUsers)
	userGroup.POST("", userHandler.CreateUser)

	// Watchlist routes
	watchlistService := watchlist.NewService(db)
	watchlistHandler := watchlist.NewHandler(watchlistService)
	watchlistGroup := e.Group("/watchlist")
	watchlistGroup.POST("", watchlistHandler.CreateWatchlist)
	watchlistGroup.PUT("", watchlistHandler.UpdateWatchlist)
	watchlistGroup.DELETE("", watchlistHandler.DeleteWatchlist)
	watchlistGroup.GET("/:userId", watchlistHandler.GetAllWatchlist)

	// Recent watchlist routes
	recentService := recentwatchlist.NewService(db)
	recentHandler := recentwatchlist.NewHandler(recentService)
	e.GET("/recent-watchlist/:userId", recentHandler.GetRecentWatchlist)
}

// indexRoute reports the API name and version
func indexRoute(c echo.Context) error {
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	message := fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion)
	return c.String(http.StatusOK, message)
}
