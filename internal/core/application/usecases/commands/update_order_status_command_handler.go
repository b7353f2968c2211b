package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies status transitions.
//
// The transition is checked once, by the aggregate, before anything is
// written. The write itself is conditional on the status that was read, so
// two racing requests cannot both succeed from the same starting status;
// the loser gets a ConcurrentModificationError.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle returns the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderID, err := parseID("order", cmd.OrderID())
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

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	expected := current.Status()
	if err = current.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, current, expected); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
