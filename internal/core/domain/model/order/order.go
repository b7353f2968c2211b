package order

import (
	"errors"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is built without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the ordering context.
//
// Invariants:
//   - items is non-empty and immutable after creation
//   - customer name and email are snapshots taken at creation
//   - status changes only along the edges of the transition table
//   - the total is always derived from items, never stored
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	customerName  string
	customerEmail kernel.Email
	items         []LineItem
	status        Status
	createdAt     time.Time
	updatedAt     time.Time

	events        []Event
	isConstructed bool
}

// NewOrder places a new order in Pending status and records EventCreated.
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Keyboard", 3, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Jane", email, []order.LineItem{item}, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerEmail kernel.Email,
	items []LineItem,
	now time.Time,
) (*Order, error) {
	now = normalize(now)
	o, err := build(id, customerID, customerName, customerEmail, items, Pending, now, now)
	if err != nil {
		return nil, err
	}

	o.record(EventCreated, Unknown, now)
	return o, nil
}

// RestoreOrder rebuilds an order from persisted state without recording events.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerEmail kernel.Email,
	items []LineItem,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	return build(id, customerID, customerName, customerEmail, items, status, normalize(createdAt), normalize(updatedAt))
}

func build(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerEmail kernel.Email,
	items []LineItem,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerName(customerName),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// Items returns a copy of the line items in request order.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total sums the line totals.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// ChangeStatus moves the order to the requested status, refreshes updatedAt
// and records EventStatusChanged. A forbidden edge returns an
// InvalidTransitionError and leaves the order untouched.
func (o *Order) ChangeStatus(to Status, now time.Time) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	from := o.status
	o.status = next
	o.updatedAt = normalize(now)
	o.record(EventStatusChanged, from, o.updatedAt)
	return nil
}

// Remove records EventDeleted. Deletion is allowed in every status.
func (o *Order) Remove(now time.Time) {
	o.record(EventDeleted, o.status, normalize(now))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// normalize drops sub-microsecond precision so timestamps survive a
// round trip through postgres timestamptz unchanged.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
