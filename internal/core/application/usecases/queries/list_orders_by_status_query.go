package queries

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

type ListOrdersByStatusQuery struct {
	status order.Status
	page   ports.Page
	guard  guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(status order.Status, skip, limit *int) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	page, err := pageOf(skip, limit)
	if err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	return ListOrdersByStatusQuery{status: status, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q ListOrdersByStatusQuery) Page() ports.Page {
	return q.page
}

type ListOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersByStatusQueryHandler(orders ports.OrderRepository) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{orders: orders}
}

func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.List(ctx, ports.OrderFilter{Status: query.Status()}, query.Page())
}
