package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/core/ports"
)

type mockShipmentRepository struct {
	mock.Mock
}

func (m *mockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) GetAllByOrigin(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, intermediaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) GetAllByDestination(ctx context.Context, intermediaryID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, intermediaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) GetAllInPlannedStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *mockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Purchase), args.Error(1)
}

type mockIntermediaryRepository struct {
	mock.Mock
}

func (m *mockIntermediaryRepository) Add(ctx context.Context, aggregate *intermediary.Intermediary) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *mockIntermediaryRepository) Get(ctx context.Context, id kernel.UUID) (*intermediary.Intermediary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intermediary.Intermediary), args.Error(1)
}

func (m *mockIntermediaryRepository) GetByEmail(ctx context.Context, email string) (*intermediary.Intermediary, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*intermediary.Intermediary), args.Error(1)
}

func (m *mockIntermediaryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockUoW struct {
	mock.Mock
	shipments      *mockShipmentRepository
	purchases      *mockPurchaseRepository
	intermediaries *mockIntermediaryRepository
}

func (m *mockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *mockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *mockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.shipments
}

func (m *mockUoW) PurchaseRepository() ports.PurchaseRepository {
	return m.purchases
}

func (m *mockUoW) IntermediaryRepository() ports.IntermediaryRepository {
	return m.intermediaries
}

type mockUoWFactory struct {
	uow *mockUoW
}

func (f *mockUoWFactory) Create() commands.UoW { return f.uow }

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func newTestUoW() *mockUoW {
	uow := &mockUoW{
		shipments:      new(mockShipmentRepository),
		purchases:      new(mockPurchaseRepository),
		intermediaries: new(mockIntermediaryRepository),
	}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func newReadyShipment(t *testing.T, origin kernel.UUID) *shipment.Shipment {
	t.Helper()

	threshold := 1
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, nil, &threshold, nil, nil)
	require.NoError(t, err)

	price, err := kernel.NewMoney(500, kernel.DefaultCurrency)
	require.NoError(t, err)
	item, err := purchase.NewLineItem(kernel.NewUUID(), "Black Lotus", 1, price)
	require.NoError(t, err)
	p, err := purchase.NewPurchase(kernel.NewUUID(), kernel.NewUUID(), []purchase.LineItem{item}, "Calle Falsa 123")
	require.NoError(t, err)

	require.NoError(t, s.AttachPurchase(p))
	return s
}

func newTestIntermediary(t *testing.T, id kernel.UUID, email string) *intermediary.Intermediary {
	t.Helper()

	account, err := intermediary.NewIntermediary(id, "Card Hub", email, "Rosario", "hash")
	require.NoError(t, err)
	return account
}

func TestShipmentReadinessJob_Run(t *testing.T) {
	logger := slog.Default()

	t.Run("should notify the origin once a threshold is reached", func(t *testing.T) {
		origin := kernel.NewUUID()
		ready := newReadyShipment(t, origin)

		uow := newTestUoW()
		uow.shipments.On("GetAllInPlannedStatus", mock.Anything).
			Return([]*shipment.Shipment{ready}, nil)
		uow.intermediaries.On("Get", mock.Anything, origin).
			Return(newTestIntermediary(t, origin, "hub@cards.example"), nil)

		notifier := new(mockNotifier)
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Recipient == "hub@cards.example"
		})).Return(nil).Once()

		job := NewShipmentReadinessJob(&mockUoWFactory{uow: uow}, notifier, logger)

		require.NoError(t, job.run(context.Background()))
		notifier.AssertExpectations(t)
	})

	t.Run("should not notify the same shipment twice", func(t *testing.T) {
		origin := kernel.NewUUID()
		ready := newReadyShipment(t, origin)

		uow := newTestUoW()
		uow.shipments.On("GetAllInPlannedStatus", mock.Anything).
			Return([]*shipment.Shipment{ready}, nil)
		uow.intermediaries.On("Get", mock.Anything, origin).
			Return(newTestIntermediary(t, origin, "hub@cards.example"), nil)

		notifier := new(mockNotifier)
		notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

		job := NewShipmentReadinessJob(&mockUoWFactory{uow: uow}, notifier, logger)

		require.NoError(t, job.run(context.Background()))
		require.NoError(t, job.run(context.Background()))
		notifier.AssertExpectations(t)
	})

	t.Run("should skip shipments below their threshold", func(t *testing.T) {
		threshold := 5
		below, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, &threshold, nil, nil)
		require.NoError(t, err)

		uow := newTestUoW()
		uow.shipments.On("GetAllInPlannedStatus", mock.Anything).
			Return([]*shipment.Shipment{below}, nil)

		notifier := new(mockNotifier)

		job := NewShipmentReadinessJob(&mockUoWFactory{uow: uow}, notifier, logger)

		require.NoError(t, job.run(context.Background()))
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	})

	t.Run("should retry after a notifier failure", func(t *testing.T) {
		origin := kernel.NewUUID()
		ready := newReadyShipment(t, origin)

		uow := newTestUoW()
		uow.shipments.On("GetAllInPlannedStatus", mock.Anything).
			Return([]*shipment.Shipment{ready}, nil)
		uow.intermediaries.On("Get", mock.Anything, origin).
			Return(newTestIntermediary(t, origin, "hub@cards.example"), nil)

		notifier := new(mockNotifier)
		notifier.On("Notify", mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Once()
		notifier.On("Notify", mock.Anything, mock.Anything).
			Return(nil).Once()

		job := NewShipmentReadinessJob(&mockUoWFactory{uow: uow}, notifier, logger)

		require.NoError(t, job.run(context.Background()))
		require.NoError(t, job.run(context.Background()))
		notifier.AssertExpectations(t)
	})

	t.Run("should surface repository errors", func(t *testing.T) {
		uow := newTestUoW()
		uow.shipments.On("GetAllInPlannedStatus", mock.Anything).
			Return(nil, errors.New("connection refused"))

		job := NewShipmentReadinessJob(&mockUoWFactory{uow: uow}, new(mockNotifier), logger)

		assert.Error(t, job.run(context.Background()))
	})
}
