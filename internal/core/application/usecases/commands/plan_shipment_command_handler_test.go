package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/kernel"
)

func TestNewPlanShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	origin := kernel.NewUUID()
	destination := kernel.NewUUID()
	threshold := 5

	cmd, err := commands.NewPlanShipmentCommand(id, origin, &destination, &threshold, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, origin, cmd.OriginIntermediaryID())
	assert.Equal(t, &destination, cmd.DestinationIntermediaryID())
	assert.Equal(t, 5, *cmd.MinPurchaseThreshold())
	assert.NoError(t, cmd.Validate())
}

func TestNewPlanShipmentCommand_InvalidInput(t *testing.T) {
	t.Run("should fail with invalid origin", func(t *testing.T) {
		_, err := commands.NewPlanShipmentCommand(kernel.NewUUID(), kernel.UUID{}, nil, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("should fail with non-positive threshold", func(t *testing.T) {
		threshold := 0
		_, err := commands.NewPlanShipmentCommand(kernel.NewUUID(), kernel.NewUUID(), nil, &threshold, nil, nil)
		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		cmd := commands.PlanShipmentCommand{}
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlanShipmentCommandIsNotConstructed)
	})
}

func TestPlanShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlanShipmentCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlanShipmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlanShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockShipmentUoWFactory)
	h := commands.NewPlanShipmentCommandHandler(factory)

	err := h.Handle(t.Context(), commands.PlanShipmentCommand{})
	require.Error(t, err)
}

func TestPlanShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlanShipmentCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlanShipmentCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
