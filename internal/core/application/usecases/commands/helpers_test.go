package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/domain/model/shipment"
)

func newPlannedShipment(t *testing.T, origin kernel.UUID, threshold *int) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, nil, threshold, nil, nil)
	require.NoError(t, err)
	return s
}

func newPendingPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()
	price, err := kernel.NewMoney(2500, kernel.DefaultCurrency)
	require.NoError(t, err)
	item, err := purchase.NewLineItem(kernel.NewUUID(), "Charizard Holo", 1, price)
	require.NoError(t, err)
	p, err := purchase.NewPurchase(kernel.NewUUID(), kernel.NewUUID(), []purchase.LineItem{item}, "")
	require.NoError(t, err)
	return p
}
