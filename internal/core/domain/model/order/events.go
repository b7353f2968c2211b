package order

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
)

// EventType names a domain event on the order events topic.
type EventType string

const (
	EventCreated       EventType = "order.created"
	EventStatusChanged EventType = "order.status_changed"
	EventDeleted       EventType = "order.deleted"
)

// Event is a fact about an order recorded by the aggregate and published
// once the unit of work that produced it has committed.
// From is Unknown for EventCreated.
type Event struct {
	Type       EventType
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	From       Status
	To         Status
	Total      kernel.Money
	OccurredAt time.Time
}

func (o *Order) record(eventType EventType, from Status, at time.Time) {
	o.events = append(o.events, Event{
		Type:       eventType,
		OrderID:    o.id,
		CustomerID: o.customerID,
		From:       from,
		To:         o.status,
		Total:      o.Total(),
		OccurredAt: at,
	})
}

// Events returns the events recorded since the aggregate was built or last cleared.
func (o *Order) Events() []Event {
	return append([]Event(nil), o.events...)
}

// ClearEvents drops recorded events after they have been dispatched.
func (o *Order) ClearEvents() {
	o.events = nil
}
