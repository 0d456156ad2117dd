// Command cleanup runs a single purge pass over the task table, deleting
// tasks past the grace period after completion or deadline. An external
// scheduler (cron or similar) is expected to invoke it periodically.
package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/mizutani-dev/teamtrack-api/internal/config"
	"github.com/mizutani-dev/teamtrack-api/internal/database"
	"github.com/mizutani-dev/teamtrack-api/internal/logging"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"github.com/mizutani-dev/teamtrack-api/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	taskRepo := repository.NewTaskRepository(database.GetDB())
	cleanup := services.NewCleanupService(taskRepo, logger)

	deleted, err := cleanup.Purge(time.Now())
	if err != nil {
		logger.Fatal("cleanup pass failed", zap.Error(err))
	}

	logger.Info("cleanup pass finished", zap.Int("deleted", deleted))
}
