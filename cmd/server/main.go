package main

import (
	"log"

	"github.com/joho/godotenv"

	"skycast/internal/api"
	"skycast/internal/config"
	"skycast/internal/database"
	"skycast/internal/server"
)

func main() {
	// Load environment variables from a .env file if one exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database (bootstraps the forecasts table)
	db, err := database.NewDB(config.GetDatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	apiKey := config.GetWeatherAPIKey()
	if apiKey == "" {
		log.Printf("Warning: OPENWEATHER_API_KEY is not set; forecast lookups will fail until it is configured")
	}

	client := api.NewOpenWeatherClient(apiKey, cfg.Weather.BaseURL, cfg.Weather.Units)

	httpServer := server.NewServer(db, client, config.GetSessionSecret())

	log.Printf("Starting server on %s", cfg.Server.Addr)
	if err := httpServer.Start(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
