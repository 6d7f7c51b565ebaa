// Command syncworker periodically reconciles every user's financial snapshot
// from their transaction history, so snapshot-derived health metrics do not
// drift between manual syncs.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"artha/internal/analytics"
	"artha/internal/config"
	"artha/internal/database"
	"artha/internal/logger"
	"artha/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	period := analytics.TimePeriod(appConfig.SyncPeriod)
	if !period.Valid() {
		return fmt.Errorf("invalid SYNC_PERIOD %q", appConfig.SyncPeriod)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	snapshotService := services.NewSnapshotService(dbManager.DB())

	c := cron.New()
	_, err = c.AddFunc(appConfig.SyncSchedule, func() {
		syncAll(snapshotService, period)
	})
	if err != nil {
		return fmt.Errorf("invalid SYNC_SCHEDULE %q: %w", appConfig.SyncSchedule, err)
	}

	log.Infof("Starting snapshot sync worker, schedule %q, period %s", appConfig.SyncSchedule, period)
	c.Start()
	defer c.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down snapshot sync worker")
	return nil
}

// syncAll re-syncs the snapshot of every user who has one. Failures are
// logged per user and do not stop the batch.
func syncAll(snapshotService services.SnapshotServicer, period analytics.TimePeriod) {
	log := logger.Get()

	userIDs, err := snapshotService.ListSnapshotUserIDs()
	if err != nil {
		log.Errorw("failed to list snapshot users", "error", err.Error())
		return
	}

	synced := 0
	for _, userID := range userIDs {
		if _, err := snapshotService.SyncFromTransactions(userID, period); err != nil {
			log.Errorw("snapshot sync failed", "user_id", userID, "error", err.Error())
			continue
		}
		synced++
	}

	log.Infow("snapshot sync batch complete", "total", len(userIDs), "synced", synced)
}
