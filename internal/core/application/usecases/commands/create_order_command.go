package commands

import (
	"errors"
	"fmt"
	"strings"

	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customer_id")
	ErrItemsAreRequired     = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand asks to place an order for a customer.
// Lines are validated here, before any lookup: at least one line, every
// quantity positive, every product id present.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []services.RequestedLine{
//	    {ProductID: keyboardID, Quantity: 3},
//	})
//	if err != nil {
//	    return err // 422
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []services.RequestedLine

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(customerID string, lines []services.RequestedLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the requested lines in request order.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	return append([]services.RequestedLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}

	var lineErrs []error
	for i, line := range lines {
		if strings.TrimSpace(line.ProductID) == "" {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].product_id", i)))
		}
		if line.Quantity <= 0 {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", line.Quantity),
			))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = append([]services.RequestedLine(nil), lines...)
	return nil
}
