package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
)

func TestAttachPurchaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPlannedShipment(t, kernel.NewUUID(), nil)
	p := newPendingPurchase(t)
	cmd, err := commands.NewAttachPurchaseCommand(aggregate.ID(), p.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	purchaseRepo := new(MockPurchaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("PurchaseRepository").Return(purchaseRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		purchaseRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 1, aggregate.PurchaseCount())
	require.NotNil(t, p.Shipment())
	assert.True(t, p.Shipment().IsEqual(aggregate.ID()))
	shipmentRepo.AssertExpectations(t)
	purchaseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachPurchaseCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	aggregate := newPlannedShipment(t, kernel.NewUUID(), nil)
	other := newPlannedShipment(t, kernel.NewUUID(), nil)
	p := newPendingPurchase(t)
	require.NoError(t, other.AttachPurchase(p))

	cmd, err := commands.NewAttachPurchaseCommand(aggregate.ID(), p.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	purchaseRepo := new(MockPurchaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("PurchaseRepository").Return(purchaseRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		purchaseRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPurchaseCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, purchase.ErrAlreadyAssigned)
	assert.Equal(t, 0, aggregate.PurchaseCount())
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
