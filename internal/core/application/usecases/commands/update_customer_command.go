package commands

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand is a partial update: nil fields are left unchanged.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID string
	name       *string
	email      *kernel.Email

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID string, name, email *string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() string {
	return c.customerID
}

// Name returns the new name, or nil to keep the current one.
func (c UpdateCustomerCommand) Name() *string {
	return c.name
}

// Email returns the new email, or nil to keep the current one.
func (c UpdateCustomerCommand) Email() *kernel.Email {
	return c.email
}

func (c *UpdateCustomerCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name *string) error {
	if name == nil {
		return nil
	}
	if strings.TrimSpace(*name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	parsed, err := kernel.NewEmail(*email)
	if err != nil {
		return err
	}
	c.email = &parsed
	return nil
}
