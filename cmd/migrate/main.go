package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/nidhisakhi/backend/internal/config"
	"github.com/nidhisakhi/backend/internal/db"
	"github.com/nidhisakhi/backend/internal/observability"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	var err error
	switch direction {
	case "up":
		err = db.RunMigrations(cfg.DatabaseURL)
	case "down":
		err = db.RunMigrationsDown(cfg.DatabaseURL)
	default:
		logger.Error("unknown direction, expected up or down", "direction", direction)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", "direction", direction, "err", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "direction", direction)
}
