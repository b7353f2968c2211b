package commands

import (
	"context"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
)

// UpdateCustomerCommandHandler applies partial customer updates. Changing
// the email re-checks uniqueness. Orders keep the snapshot they were placed with.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	repo := uow.CustomerRepository()
	existing, err := repo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if name := cmd.Name(); name != nil {
		if err = existing.Rename(*name, now); err != nil {
			return nil, err
		}
	}

	if email := cmd.Email(); email != nil && email.String() != existing.Email().String() {
		if err = ensureEmailIsFree(ctx, repo, *email); err != nil {
			return nil, err
		}
		if err = existing.ChangeEmail(*email, now); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
