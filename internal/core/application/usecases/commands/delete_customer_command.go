package commands

import (
	"context"
	"errors"
	"strings"

	"ordermanagement/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer. Existing orders keep their
// customer snapshot and are not touched.
type DeleteCustomerCommand struct {
	customerID string
	guard      guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID string) (DeleteCustomerCommand, error) {
	if strings.TrimSpace(customerID) == "" {
		return DeleteCustomerCommand{}, ErrCustomerIDIsRequired
	}
	return DeleteCustomerCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() string {
	return c.customerID
}

type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customerID, err := parseID("customer", cmd.CustomerID())
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

	repo := uow.CustomerRepository()
	existing, err := repo.Get(ctx, customerID)
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
