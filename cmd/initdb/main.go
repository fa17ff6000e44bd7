package main

import (
	"log"

	"github.com/joho/godotenv"

	"skycast/internal/config"
	"skycast/internal/database"
)

// Bootstraps the forecasts table without starting the web server. Useful for
// provisioning a fresh database before first deploy.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	db, err := database.NewDB(config.GetDatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	saved, err := db.RecentForecasts(5)
	if err != nil {
		log.Fatalf("Schema created but verification query failed: %v", err)
	}

	log.Printf("Database initialized successfully.")
	if len(saved) == 0 {
		log.Printf("No saved forecasts yet.")
		return
	}

	log.Printf("Most recent saves:")
	for _, s := range saved {
		log.Printf("  #%d %s / %s at %s", s.ID, s.UserName, s.City, s.SavedAt.Format("2006-01-02 15:04:05"))
	}
}
