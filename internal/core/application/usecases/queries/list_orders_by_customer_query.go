package queries

import (
	"context"
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrListOrdersByCustomerQueryIsNotConstructed = errors.New(
		"ListOrdersByCustomerQuery must be created via NewListOrdersByCustomerQuery constructor",
	)
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer_id")
)

// ListOrdersByCustomerQuery pages through one customer's orders.
type ListOrdersByCustomerQuery struct {
	customerID string
	page       ports.Page
	guard      guard.ConstructorGuard
}

func NewListOrdersByCustomerQuery(customerID string, skip, limit *int) (ListOrdersByCustomerQuery, error) {
	if strings.TrimSpace(customerID) == "" {
		return ListOrdersByCustomerQuery{}, ErrCustomerIDIsRequired
	}
	page, err := pageOf(skip, limit)
	if err != nil {
		return ListOrdersByCustomerQuery{}, err
	}
	return ListOrdersByCustomerQuery{
		customerID: customerID,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByCustomerQueryIsNotConstructed)
}

func (q ListOrdersByCustomerQuery) CustomerID() string {
	return q.customerID
}

func (q ListOrdersByCustomerQuery) Page() ports.Page {
	return q.page
}

// ListOrdersByCustomerQueryHandler confirms the customer exists before
// listing, so an unknown customer is NotFound rather than an empty page.
type ListOrdersByCustomerQueryHandler struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
}

func NewListOrdersByCustomerQueryHandler(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
) ListOrdersByCustomerQueryHandler {
	return ListOrdersByCustomerQueryHandler{customers: customers, orders: orders}
}

func (h ListOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByCustomerQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customerID, err := parseID("customer", query.CustomerID())
	if err != nil {
		return nil, err
	}

	if _, err = h.customers.Get(ctx, customerID); err != nil {
		return nil, err
	}

	return h.orders.List(ctx, ports.OrderFilter{CustomerID: &customerID}, query.Page())
}
