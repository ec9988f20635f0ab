// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is ShipmentReadinessJob, which scans planned shipments
// every minute and mails the origin intermediary once a shipment's purchase
// threshold is reached. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(uowFactory, notifier, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	readinessJob *ShipmentReadinessJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		readinessJob: NewShipmentReadinessJob(uowFactory, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.readinessJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment readiness job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.readinessJob.Stop()
}
