// Package order implements the Order aggregate root: line item snapshots,
// the status state machine and the domain events emitted on every change.
//
// Orders are placed in PENDING status and may move to PAID or CANCELLED;
// PAID may move to CANCELLED; CANCELLED is terminal. Items are fixed at
// creation and the order total is always computed from them.
package order
