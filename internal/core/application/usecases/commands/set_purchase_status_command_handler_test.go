package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/pkg/errs"
)

func TestNewSetPurchaseStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewSetPurchaseStatusCommand(kernel.NewUUID(), "teleported")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSetPurchaseStatusCommandHandler_Handle_AdvancesAdjacent(t *testing.T) {
	ctx := t.Context()
	p := newPendingPurchase(t)
	cmd, err := commands.NewSetPurchaseStatusCommand(p.ID(), purchase.InOriginIntermediaryHands.String())
	require.NoError(t, err)

	repo := new(MockPurchaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		repo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPurchaseStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, purchase.InOriginIntermediaryHands, p.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetPurchaseStatusCommandHandler_Handle_RejectsSkip(t *testing.T) {
	ctx := t.Context()
	p := newPendingPurchase(t)
	cmd, err := commands.NewSetPurchaseStatusCommand(p.ID(), purchase.Delivered.String())
	require.NoError(t, err)

	repo := new(MockPurchaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPurchaseStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, purchase.Pending, p.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
