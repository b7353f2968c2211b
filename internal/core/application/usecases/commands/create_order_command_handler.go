package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders.
//
// The customer is resolved first (ObjectNotFoundError if absent), then every
// distinct product in one bulk lookup (InvalidReferenceError listing the
// missing ids). The order is written last, so a failed placement never
// leaves anything behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  services.OrderPlacement
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  services.NewOrderPlacement(),
	}
}

// Handle places the order and returns it as stored.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customerID, err := parseID("customer", cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	products, err := uow.ProductRepository().GetByIDs(ctx, h.placement.ProductIDs(lines))
	if err != nil {
		return nil, err
	}

	placed, err := h.placement.Place(kernel.NewUUID(), buyer, lines, products, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
