package queries

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery counts orders per status.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds a count for every known status, zero
// included.
type GetOrderStatsQueryResponse struct {
	ByStatus map[order.Status]int64
	Total    int64
}

type GetOrderStatsQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderStatsQueryHandler(orders ports.OrderRepository) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{orders: orders}
}

func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	counts, err := h.orders.CountByStatus(ctx)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	resp := GetOrderStatsQueryResponse{ByStatus: make(map[order.Status]int64, len(order.Statuses()))}
	for _, s := range order.Statuses() {
		resp.ByStatus[s] = counts[s]
		resp.Total += counts[s]
	}
	return resp, nil
}
