// Package shipment contains the Shipment aggregate root: the consolidated
// logistics batch between intermediaries, its explicit lifecycle state
// machine, and the purchase-status cascades each lifecycle event applies.
package shipment
