// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. Zero values mean "any".
type OrderFilter struct {
	CustomerID *kernel.UUID
	Status     order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are stored and removed together.
type OrderRepository interface {
	// Add persists a new order with all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders matching filter, oldest first (created_at, then id).
	List(ctx context.Context, filter OrderFilter, page Page) ([]*order.Order, error)

	// UpdateStatus writes the aggregate's current status and updated_at only
	// if the stored status still equals expected. A missing row yields
	// ObjectNotFoundError; a row whose status moved on yields
	// ConcurrentModificationError.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Delete removes the order and its line items. Returns ObjectNotFoundError
	// when nothing was deleted.
	Delete(ctx context.Context, aggregate *order.Order) error

	// CountByStatus returns the number of orders per status. Statuses with
	// no orders are present with a zero count.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
