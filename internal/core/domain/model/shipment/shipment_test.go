package shipment_test

import (
	"testing"
	"time"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil, nil)
	require.NoError(t, err)
	return s
}

func newTestPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()
	price, err := kernel.NewMoney(1500, kernel.DefaultCurrency)
	require.NoError(t, err)
	item, err := purchase.NewLineItem(kernel.NewUUID(), "Dark Magician", 2, price)
	require.NoError(t, err)
	p, err := purchase.NewPurchase(kernel.NewUUID(), kernel.NewUUID(), []purchase.LineItem{item}, "")
	require.NoError(t, err)
	return p
}

func restoreWithStatus(t *testing.T, status shipment.Status, purchases []*purchase.Purchase) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), status, kernel.NewUUID(),
		nil, nil, nil, nil, nil, "", purchases, 1,
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should start planned with no purchases", func(t *testing.T) {
		destination := kernel.NewUUID()
		threshold := 5
		price, _ := kernel.NewMoney(500, "ARS")
		scheduled := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), &destination, &threshold, &price, &scheduled,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.Planned, s.Status())
		assert.Empty(t, s.Purchases())
		assert.Equal(t, 5, *s.MinPurchaseThreshold())
		assert.True(t, destination.IsEqual(*s.DestinationIntermediary()))
		assert.Equal(t, scheduled, *s.ScheduledDispatchDate())
		assert.Nil(t, s.DeliveredDate())
	})

	t.Run("should fail without origin intermediary", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.UUID{}, nil, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive threshold", func(t *testing.T) {
		threshold := 0
		_, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, &threshold, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("should fail validation for zero value shipment", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("should pass validation for constructed shipment", func(t *testing.T) {
		require.NoError(t, newTestShipment(t).Validate())
	})
}

func TestShipment_Activate(t *testing.T) {
	t.Run("should activate without a threshold", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.Activate())
		assert.Equal(t, shipment.Active, s.Status())
	})

	t.Run("should fail while threshold is not reached", func(t *testing.T) {
		threshold := 2
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, &threshold, nil, nil)
		require.NoError(t, err)
		require.NoError(t, s.AttachPurchase(newTestPurchase(t)))

		err = s.Activate()
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
		assert.Equal(t, shipment.Planned, s.Status())
	})

	t.Run("should activate once threshold is reached", func(t *testing.T) {
		threshold := 2
		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, &threshold, nil, nil)
		require.NoError(t, err)
		require.NoError(t, s.AttachPurchase(newTestPurchase(t)))
		require.NoError(t, s.AttachPurchase(newTestPurchase(t)))

		require.NoError(t, s.Activate())
		assert.Equal(t, shipment.Active, s.Status())
	})

	t.Run("should fail when already active", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.Active, nil)
		require.ErrorIs(t, s.Activate(), shipment.ErrInvalidTransition)
	})
}

func TestShipment_FullLifecycle(t *testing.T) {
	s := newTestShipment(t)
	p := newTestPurchase(t)
	require.NoError(t, s.AttachPurchase(p))

	require.NoError(t, s.Activate())
	require.NoError(t, s.GenerateOrder())

	require.NoError(t, s.MarkSellerSent())
	assert.Equal(t, purchase.InOriginIntermediaryHands, p.Status())

	require.NoError(t, s.Dispatch("left the counter at noon"))
	assert.Equal(t, shipment.IntermediaryDispatched, s.Status())
	assert.Equal(t, purchase.InTransitToDestination, p.Status())
	assert.Contains(t, s.Notes(), "left the counter at noon")

	require.NoError(t, s.Receive())
	assert.Equal(t, purchase.ReadyForPickup, p.Status())

	deliveredAt := time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC)
	require.NoError(t, s.MarkDelivered(deliveredAt))
	assert.Equal(t, shipment.Delivered, s.Status())
	assert.Equal(t, purchase.Delivered, p.Status())
	assert.Equal(t, deliveredAt, *s.DeliveredDate())
}

func TestShipment_MarkSellerSent_SkipsNonPendingPurchases(t *testing.T) {
	pending := newTestPurchase(t)
	advanced := newTestPurchase(t)
	require.NoError(t, advanced.SetStatus(purchase.InOriginIntermediaryHands))

	s := restoreWithStatus(t, shipment.Planned, nil)
	require.NoError(t, s.AttachPurchase(pending))
	require.NoError(t, s.AttachPurchase(advanced))

	require.NoError(t, s.MarkSellerSent())

	assert.Equal(t, purchase.InOriginIntermediaryHands, pending.Status())
	assert.Equal(t, purchase.InOriginIntermediaryHands, advanced.Status())
}

func TestShipment_Dispatch_Idempotence(t *testing.T) {
	s := restoreWithStatus(t, shipment.SellerSent, nil)

	require.NoError(t, s.Dispatch(""))
	assert.Equal(t, shipment.IntermediaryDispatched, s.Status())

	// A second dispatch must be rejected and leave the status unchanged.
	err := s.Dispatch("")
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	assert.Equal(t, shipment.IntermediaryDispatched, s.Status())
}

func TestShipment_MarkWithdrawn(t *testing.T) {
	p := newTestPurchase(t)
	require.NoError(t, p.SetStatus(purchase.InOriginIntermediaryHands))
	require.NoError(t, p.SetStatus(purchase.InTransitToDestination))
	require.NoError(t, p.SetStatus(purchase.ReadyForPickup))

	s := restoreWithStatus(t, shipment.IntermediaryReceived, []*purchase.Purchase{p})

	withdrawnAt := time.Now().UTC()
	require.NoError(t, s.MarkWithdrawn(withdrawnAt))

	assert.Equal(t, shipment.Withdrawn, s.Status())
	assert.Equal(t, purchase.Delivered, p.Status())
	assert.Equal(t, withdrawnAt, *s.DeliveredDate())
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("should cancel an empty shipment", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Cancel())
		assert.Equal(t, shipment.Cancelled, s.Status())
	})

	t.Run("should fail while purchases are attached", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.AttachPurchase(newTestPurchase(t)))

		require.ErrorIs(t, s.Cancel(), shipment.ErrHasAttachedPurchases)
		assert.Equal(t, shipment.Planned, s.Status())
	})

	t.Run("should fail for terminal shipment", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.Delivered, nil)
		require.ErrorIs(t, s.Cancel(), shipment.ErrInvalidTransition)
	})
}

func TestShipment_CancelDetachingPurchases(t *testing.T) {
	t.Run("should detach all purchases and then cancel", func(t *testing.T) {
		first := newTestPurchase(t)
		second := newTestPurchase(t)
		s := newTestShipment(t)
		require.NoError(t, s.AttachPurchase(first))
		require.NoError(t, s.AttachPurchase(second))

		detached, err := s.CancelDetachingPurchases()

		require.NoError(t, err)
		assert.Len(t, detached, 2)
		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Zero(t, s.PurchaseCount())
		assert.Nil(t, first.Shipment())
		assert.Nil(t, second.Shipment())
	})

	t.Run("should fail for terminal shipment", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.Cancelled, nil)
		_, err := s.CancelDetachingPurchases()
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	})
}

func TestShipment_AttachPurchase(t *testing.T) {
	t.Run("should keep shipment and purchase references in sync", func(t *testing.T) {
		s := newTestShipment(t)
		p := newTestPurchase(t)

		require.NoError(t, s.AttachPurchase(p))

		require.NotNil(t, p.Shipment())
		assert.True(t, p.Shipment().IsEqual(s.ID()))
		require.Len(t, s.Purchases(), 1)
		assert.True(t, s.Purchases()[0].IsEqual(p))
	})

	t.Run("should ignore re-attaching to the same shipment", func(t *testing.T) {
		s := newTestShipment(t)
		p := newTestPurchase(t)
		require.NoError(t, s.AttachPurchase(p))

		require.NoError(t, s.AttachPurchase(p))
		assert.Equal(t, 1, s.PurchaseCount())
	})

	t.Run("should fail when purchase belongs to another shipment", func(t *testing.T) {
		first := newTestShipment(t)
		second := newTestShipment(t)
		p := newTestPurchase(t)
		require.NoError(t, first.AttachPurchase(p))

		err := second.AttachPurchase(p)
		require.ErrorIs(t, err, purchase.ErrAlreadyAssigned)
		assert.Zero(t, second.PurchaseCount())
	})

	t.Run("should fail after dispatch", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.IntermediaryDispatched, nil)
		err := s.AttachPurchase(newTestPurchase(t))
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	})
}

func TestShipment_DetachPurchase(t *testing.T) {
	t.Run("should clear both sides of the link", func(t *testing.T) {
		s := newTestShipment(t)
		p := newTestPurchase(t)
		require.NoError(t, s.AttachPurchase(p))

		detached, err := s.DetachPurchase(p.ID())

		require.NoError(t, err)
		assert.True(t, detached.IsEqual(p))
		assert.Nil(t, p.Shipment())
		assert.Zero(t, s.PurchaseCount())
	})

	t.Run("should fail for unknown purchase", func(t *testing.T) {
		s := newTestShipment(t)
		_, err := s.DetachPurchase(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestShipment_DeletionGuard(t *testing.T) {
	s := newTestShipment(t)
	p := newTestPurchase(t)
	require.NoError(t, s.AttachPurchase(p))

	assert.False(t, s.CanBeDeleted())

	_, err := s.DetachPurchase(p.ID())
	require.NoError(t, err)
	assert.True(t, s.CanBeDeleted())
}

func TestShipment_UpdateDetails(t *testing.T) {
	t.Run("should not move status when editing details", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.SellerSent, nil)
		notes := "customs paperwork pending"
		scheduled := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)

		require.NoError(t, s.UpdateDetails(&notes, &scheduled))

		assert.Equal(t, shipment.SellerSent, s.Status())
		assert.Equal(t, notes, s.Notes())
		assert.Equal(t, scheduled, *s.ScheduledDispatchDate())
	})

	t.Run("should reject updates on terminal shipment", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.Delivered, nil)
		notes := "too late"
		require.ErrorIs(t, s.UpdateDetails(&notes, nil), shipment.ErrInvalidTransition)
	})
}

func TestShipment_ClearDestination(t *testing.T) {
	destination := kernel.NewUUID()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &destination, nil, nil, nil)
	require.NoError(t, err)

	s.ClearDestination()
	assert.Nil(t, s.DestinationIntermediary())
}

func TestShipment_IsOwnedBy(t *testing.T) {
	origin := kernel.NewUUID()
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, s.IsOwnedBy(origin))
	assert.False(t, s.IsOwnedBy(kernel.NewUUID()))
}
