// Package main is the entry point for the Watchlist API
package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/marketpulse/watchlistapi/config"
	"github.com/marketpulse/watchlistapi/database"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/services"
	"github.com/marketpulse/watchlistapi/shared/middleware"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	// startUpMessage
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Watchlist API")

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		zaplogger.Fatal("failed to load configuration", zaplogger.Fields{"error": err})
	}
	zaplogger.Info("  * loaded")
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)
	e.HTTPErrorHandler = middleware.HTTPErrorHandler

	// Connect to Postgres
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	// Persist application logs alongside the domain tables
	if err := zaplogger.InitLogger(db); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Setup routes
	setupRoutes(e, db)

	// Setup and start cron jobs
	cronService := services.NewCronService(cfg, db)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3009"
	}
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", cfg.APIName, cfg.APIVersion, port)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + port))
}
