package commands

import (
	"context"
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. An email already in use
// yields AlreadyExistsError; the unique index on customers.email backs this
// check against concurrent registrations.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	if err := ensureEmailIsFree(ctx, repo, cmd.Email()); err != nil {
		return nil, err
	}

	created, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

type customerByEmail interface {
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)
}

func ensureEmailIsFree(ctx context.Context, repo customerByEmail, email kernel.Email) error {
	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return errs.NewAlreadyExistsError("email", email.String())
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
