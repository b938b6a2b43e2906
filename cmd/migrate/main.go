package main

import (
	"flag"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"todo-serverless-api/internal/config"
	"todo-serverless-api/internal/database"
)

func main() {
	var (
		migrationsPath = flag.String("migrations", "./migrations", "Migrations directory path")
		action         = flag.String("action", "up", "Migration action: up, down, version")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if err := cfg.Database.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid database configuration")
	}

	absMigrationsPath, err := filepath.Abs(*migrationsPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to resolve migrations path")
	}

	migrator, err := database.NewMigrator("file://"+absMigrationsPath, cfg.Database.URL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize migrator")
	}
	defer migrator.Close()

	logger.WithFields(logrus.Fields{
		"migrations_path": absMigrationsPath,
		"action":          *action,
	}).Info("Starting migration tool")

	switch *action {
	case "up":
		if err := migrator.Up(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrator.Down(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			logger.WithError(err).Fatal("Failed to read migration version")
		}
		logger.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Current schema version")
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, version")
	}

	logger.Info("Migration tool completed successfully")
}
