package queries

import (
	"context"
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

type GetCustomerQuery struct {
	customerID string
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID string) (GetCustomerQuery, error) {
	if strings.TrimSpace(customerID) == "" {
		return GetCustomerQuery{}, ErrCustomerIDIsRequired
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() string {
	return q.customerID
}

type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := parseID("customer", query.CustomerID())
	if err != nil {
		return nil, err
	}

	return h.customers.Get(ctx, id)
}

// ListCustomersQuery pages through customers, oldest first.
type ListCustomersQuery struct {
	page  ports.Page
	guard guard.ConstructorGuard
}

func NewListCustomersQuery(skip, limit *int) (ListCustomersQuery, error) {
	page, err := pageOf(skip, limit)
	if err != nil {
		return ListCustomersQuery{}, err
	}
	return ListCustomersQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Page() ports.Page {
	return q.page
}

type ListCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

func NewListCustomersQueryHandler(customers ports.CustomerRepository) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{customers: customers}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.customers.List(ctx, query.Page())
}
