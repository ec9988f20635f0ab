package commands

import (
	"context"
	"log/slog"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
	"cardmarket/internal/pkg/errs"
)

// transitionShipment runs one lifecycle mutation against a shipment inside a
// fresh unit of work: load, ownership check, mutate, persist, commit. Every
// status-moving handler in this package funnels through here so the
// transaction shape and the actor check stay identical across operations.
//
// actorID is optional; when set the actor must be the shipment's origin
// intermediary or the operation fails with errs.ErrUnauthorized. The returned
// event captures the transition for post-commit publishing.
func transitionShipment(
	ctx context.Context,
	uowFactory ShipmentUoWFactory,
	shipmentID kernel.UUID,
	actorID *kernel.UUID,
	mutate func(*shipment.Shipment) error,
) (ports.ShipmentStatusChangedEvent, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.ShipmentStatusChangedEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, shipmentID)
	if err != nil {
		return ports.ShipmentStatusChangedEvent{}, err
	}

	if actorID != nil && !aggregate.IsOwnedBy(*actorID) {
		return ports.ShipmentStatusChangedEvent{}, errs.NewUnauthorizedError("actor is not the origin intermediary")
	}

	oldStatus := aggregate.Status()
	if err = mutate(aggregate); err != nil {
		return ports.ShipmentStatusChangedEvent{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return ports.ShipmentStatusChangedEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.ShipmentStatusChangedEvent{}, err
	}

	return ports.ShipmentStatusChangedEvent{
		ShipmentID: aggregate.ID().String(),
		OldStatus:  oldStatus.String(),
		NewStatus:  aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}, nil
}

// publishStatusChanged emits the event after the transaction committed.
// Best-effort: broker failures are logged and never surfaced to the caller.
func publishStatusChanged(ctx context.Context, publisher ports.EventPublisher, event ports.ShipmentStatusChangedEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishShipmentStatusChanged(ctx, event); err != nil {
		slog.Warn("failed to publish shipment status change",
			slog.String("shipment_id", event.ShipmentID),
			slog.String("new_status", event.NewStatus),
			slog.Any("error", err))
	}
}
