package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/domain/services"
	"cardmarket/internal/core/ports"
)

// ShipmentReadinessJob periodically scans planned shipments and notifies the
// origin intermediary once a shipment's purchase threshold is reached.
// Crossing the threshold never activates the shipment; activation stays an
// explicit operator action.
type ShipmentReadinessJob struct {
	uowFactory commands.UoWFactory
	gate       services.CapacityGate
	notifier   ports.Notifier
	cron       *cron.Cron
	logger     *slog.Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewShipmentReadinessJob creates the readiness scan job.
func NewShipmentReadinessJob(
	uowFactory commands.UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *ShipmentReadinessJob {
	return &ShipmentReadinessJob{
		uowFactory: uowFactory,
		gate:       services.NewCapacityGate(),
		notifier:   notifier,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "shipment_readiness_job"),
		notified:   make(map[string]struct{}),
	}
}

// Start schedules the readiness scan to run every minute.
func (j *ShipmentReadinessJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shipment readiness scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment readiness job started (running every minute)")
	return nil
}

// Stop stops the readiness job.
func (j *ShipmentReadinessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment readiness job stopped")
}

func (j *ShipmentReadinessJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	planned, err := uow.ShipmentRepository().GetAllInPlannedStatus(ctx)
	if err != nil {
		return err
	}

	for _, s := range planned {
		if !j.gate.IsReady(s) {
			continue
		}
		if j.alreadyNotified(s.ID().String()) {
			continue
		}

		origin, err := uow.IntermediaryRepository().Get(ctx, s.OriginIntermediary())
		if err != nil {
			j.logger.WarnContext(ctx, "Readiness scan could not load origin intermediary",
				"shipment_id", s.ID().String(), "error", err)
			continue
		}

		if err := j.notifier.Notify(ctx, readinessNotification(s, origin.Email())); err != nil {
			j.logger.WarnContext(ctx, "Readiness notification failed",
				"shipment_id", s.ID().String(), "error", err)
			continue
		}

		j.markNotified(s.ID().String())
	}

	return nil
}

func (j *ShipmentReadinessJob) alreadyNotified(shipmentID string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, ok := j.notified[shipmentID]
	return ok
}

func (j *ShipmentReadinessJob) markNotified(shipmentID string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.notified[shipmentID] = struct{}{}
}

func readinessNotification(s *shipment.Shipment, recipient string) ports.Notification {
	return ports.Notification{
		Recipient: recipient,
		Subject:   "Shipment ready to activate",
		Body: fmt.Sprintf(
			"Shipment %s reached its purchase threshold (%d purchases attached). You can activate it now.",
			s.ID().String(), s.PurchaseCount()),
	}
}
