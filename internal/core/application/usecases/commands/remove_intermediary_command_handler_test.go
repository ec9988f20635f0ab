package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/shipment"
)

func newRemovableIntermediary(t *testing.T, id kernel.UUID) *intermediary.Intermediary {
	t.Helper()
	i, err := intermediary.RestoreIntermediary(id, "CardHub", "ops@cardhub.example", "", "hash")
	require.NoError(t, err)
	return i
}

func newDestinationShipment(t *testing.T, destination kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &destination, nil, nil, nil)
	require.NoError(t, err)
	return s
}

func TestRemoveIntermediaryCommandHandler_Handle_Cascade(t *testing.T) {
	ctx := t.Context()
	intermediaryID := kernel.NewUUID()
	cmd, err := commands.NewRemoveIntermediaryCommand(intermediaryID)
	require.NoError(t, err)

	originShipment := newPlannedShipment(t, intermediaryID, nil)
	p := newPendingPurchase(t)
	require.NoError(t, originShipment.AttachPurchase(p))
	destinationShipment := newDestinationShipment(t, intermediaryID)

	shipmentRepo := new(MockShipmentRepository)
	purchaseRepo := new(MockPurchaseRepository)
	intermediaryRepo := new(MockIntermediaryRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("PurchaseRepository").Return(purchaseRepo)
	uow.On("IntermediaryRepository").Return(intermediaryRepo)

	intermediaryRepo.On("Get", mock.Anything, intermediaryID).
		Return(newRemovableIntermediary(t, intermediaryID), nil).Once()
	shipmentRepo.On("GetAllByOrigin", mock.Anything, intermediaryID).
		Return([]*shipment.Shipment{originShipment}, nil).Once()
	shipmentRepo.On("GetAllByDestination", mock.Anything, intermediaryID).
		Return([]*shipment.Shipment{destinationShipment}, nil).Once()
	shipmentRepo.On("Get", mock.Anything, originShipment.ID()).Return(originShipment, nil).Once()
	shipmentRepo.On("Get", mock.Anything, destinationShipment.ID()).Return(destinationShipment, nil).Once()
	purchaseRepo.On("Update", mock.Anything, p).Return(nil).Once()
	shipmentRepo.On("Update", mock.Anything, originShipment).Return(nil).Once()
	shipmentRepo.On("Update", mock.Anything, destinationShipment).Return(nil).Once()
	intermediaryRepo.On("Delete", mock.Anything, intermediaryID).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemoveIntermediaryCommandHandler(factory)
	report, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, report.IntermediaryDeleted)
	assert.Equal(t, []string{originShipment.ID().String()}, report.CancelledShipmentIDs)
	assert.Equal(t, []string{destinationShipment.ID().String()}, report.ClearedShipmentIDs)
	assert.Empty(t, report.Failures)

	assert.Equal(t, shipment.Cancelled, originShipment.Status())
	assert.Nil(t, p.Shipment())
	assert.Nil(t, destinationShipment.DestinationIntermediary())
	shipmentRepo.AssertExpectations(t)
	purchaseRepo.AssertExpectations(t)
	intermediaryRepo.AssertExpectations(t)
}

func TestRemoveIntermediaryCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	intermediaryID := kernel.NewUUID()
	cmd, err := commands.NewRemoveIntermediaryCommand(intermediaryID)
	require.NoError(t, err)

	broken := newPlannedShipment(t, intermediaryID, nil)
	healthy := newPlannedShipment(t, intermediaryID, nil)

	shipmentRepo := new(MockShipmentRepository)
	purchaseRepo := new(MockPurchaseRepository)
	intermediaryRepo := new(MockIntermediaryRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("PurchaseRepository").Return(purchaseRepo)
	uow.On("IntermediaryRepository").Return(intermediaryRepo)

	intermediaryRepo.On("Get", mock.Anything, intermediaryID).
		Return(newRemovableIntermediary(t, intermediaryID), nil).Once()
	shipmentRepo.On("GetAllByOrigin", mock.Anything, intermediaryID).
		Return([]*shipment.Shipment{broken, healthy}, nil).Once()
	shipmentRepo.On("GetAllByDestination", mock.Anything, intermediaryID).
		Return([]*shipment.Shipment(nil), nil).Once()
	shipmentRepo.On("Get", mock.Anything, broken.ID()).Return(nil, errors.New("row gone")).Once()
	shipmentRepo.On("Get", mock.Anything, healthy.ID()).Return(healthy, nil).Once()
	shipmentRepo.On("Update", mock.Anything, healthy).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemoveIntermediaryCommandHandler(factory)
	report, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, report.IntermediaryDeleted)
	assert.Equal(t, []string{healthy.ID().String()}, report.CancelledShipmentIDs)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, broken.ID().String(), report.Failures[0].ShipmentID)
	intermediaryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
