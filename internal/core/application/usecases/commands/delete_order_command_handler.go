package commands

import (
	"context"
	"time"
)

// DeleteOrderCommandHandler hard-deletes an order and its line items.
// PAID orders are deletable too; nothing is archived.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderID, err := parseID("order", cmd.OrderID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	existing.Remove(time.Now())
	if err = repo.Delete(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
