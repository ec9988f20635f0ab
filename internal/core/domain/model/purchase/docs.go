// Package purchase contains the Purchase aggregate: a buyer's card order with
// its line item snapshots, delivery status chain, and the back-reference to
// the shipment that carries it.
package purchase
