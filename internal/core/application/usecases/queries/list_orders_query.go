package queries

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through all orders, oldest first.
// Nil skip and limit fall back to 0 and ports.DefaultLimit.
type ListOrdersQuery struct {
	page  ports.Page
	guard guard.ConstructorGuard
}

func NewListOrdersQuery(skip, limit *int) (ListOrdersQuery, error) {
	page, err := pageOf(skip, limit)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() ports.Page {
	return q.page
}

type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.List(ctx, ports.OrderFilter{}, query.Page())
}
