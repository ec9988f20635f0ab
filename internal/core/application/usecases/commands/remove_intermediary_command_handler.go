package commands

import (
	"context"
	"log/slog"

	"cardmarket/internal/core/domain/model/kernel"
)

// ShipmentFailure records one shipment the removal cascade could not process.
type ShipmentFailure struct {
	ShipmentID string `json:"shipment_id"`
	Reason     string `json:"reason"`
}

// RemoveIntermediaryReport summarizes a removal cascade run. The cascade
// continues past individual failures, so a report can carry both processed
// and failed shipments. The intermediary row itself is only deleted when no
// shipment failed.
type RemoveIntermediaryReport struct {
	CancelledShipmentIDs []string          `json:"cancelled_shipment_ids"`
	ClearedShipmentIDs   []string          `json:"cleared_shipment_ids"`
	Failures             []ShipmentFailure `json:"failures,omitempty"`
	IntermediaryDeleted  bool              `json:"intermediary_deleted"`
}

// RemoveIntermediaryCommandHandler runs the intermediary removal cascade.
// Each affected shipment is processed in its own transaction, so one failed
// shipment never poisons the rest of the cascade.
type RemoveIntermediaryCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveIntermediaryCommandHandler creates a handler for intermediary
// removal.
func NewRemoveIntermediaryCommandHandler(uowFactory UoWFactory) RemoveIntermediaryCommandHandler {
	return RemoveIntermediaryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Origin shipments are cancelled with their purchases detached, destination
// shipments keep running with the destination cleared, and the intermediary
// row is deleted once every affected shipment went through.
func (h RemoveIntermediaryCommandHandler) Handle(ctx context.Context, cmd RemoveIntermediaryCommand) (RemoveIntermediaryReport, error) {
	report := RemoveIntermediaryReport{}

	if err := cmd.Validate(); err != nil {
		return report, err
	}

	originIDs, destinationIDs, err := h.collectAffectedShipments(ctx, cmd.IntermediaryID())
	if err != nil {
		return report, err
	}

	for _, shipmentID := range originIDs {
		if err := h.cancelOriginShipment(ctx, shipmentID); err != nil {
			report.Failures = append(report.Failures, ShipmentFailure{
				ShipmentID: shipmentID.String(),
				Reason:     err.Error(),
			})
			continue
		}
		report.CancelledShipmentIDs = append(report.CancelledShipmentIDs, shipmentID.String())
	}

	for _, shipmentID := range destinationIDs {
		if err := h.clearDestinationShipment(ctx, shipmentID); err != nil {
			report.Failures = append(report.Failures, ShipmentFailure{
				ShipmentID: shipmentID.String(),
				Reason:     err.Error(),
			})
			continue
		}
		report.ClearedShipmentIDs = append(report.ClearedShipmentIDs, shipmentID.String())
	}

	if len(report.Failures) > 0 {
		slog.Warn("intermediary removal finished with failures",
			slog.String("intermediary_id", cmd.IntermediaryID().String()),
			slog.Int("failed", len(report.Failures)))
		return report, nil
	}

	if err := h.deleteIntermediary(ctx, cmd.IntermediaryID()); err != nil {
		return report, err
	}

	report.IntermediaryDeleted = true
	return report, nil
}

// collectAffectedShipments verifies the intermediary exists and snapshots the
// IDs of the shipments referencing it.
func (h RemoveIntermediaryCommandHandler) collectAffectedShipments(
	ctx context.Context,
	intermediaryID kernel.UUID,
) (origins, destinations []kernel.UUID, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.IntermediaryRepository().Get(ctx, intermediaryID); err != nil {
		return nil, nil, err
	}

	shipmentRepo := uow.ShipmentRepository()

	originShipments, err := shipmentRepo.GetAllByOrigin(ctx, intermediaryID)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range originShipments {
		origins = append(origins, s.ID())
	}

	destinationShipments, err := shipmentRepo.GetAllByDestination(ctx, intermediaryID)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range destinationShipments {
		destinations = append(destinations, s.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return origins, destinations, nil
}

// cancelOriginShipment cancels one origin shipment in its own transaction,
// detaching its purchases first. Shipments already in a terminal status are
// left as they are.
func (h RemoveIntermediaryCommandHandler) cancelOriginShipment(ctx context.Context, shipmentID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	purchaseRepo := uow.PurchaseRepository()

	aggregate, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() {
		return uow.Commit(ctx)
	}

	detached, err := aggregate.CancelDetachingPurchases()
	if err != nil {
		return err
	}

	for _, p := range detached {
		if err = purchaseRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// clearDestinationShipment clears the destination reference of one shipment
// in its own transaction. The shipment keeps running.
func (h RemoveIntermediaryCommandHandler) clearDestinationShipment(ctx context.Context, shipmentID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	aggregate.ClearDestination()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RemoveIntermediaryCommandHandler) deleteIntermediary(ctx context.Context, intermediaryID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.IntermediaryRepository().Delete(ctx, intermediaryID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
