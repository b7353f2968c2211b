package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("product_id")
)

// UpdateProductCommand is a partial catalog update: nil fields are left
// unchanged. Repricing never affects orders already placed.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID string
	name      *string
	price     *kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID string, name *string, price *float64) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() string {
	return c.productID
}

func (c UpdateProductCommand) Name() *string {
	return c.name
}

func (c UpdateProductCommand) Price() *kernel.Money {
	return c.price
}

func (c *UpdateProductCommand) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDIsRequired
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name *string) error {
	if name == nil {
		return nil
	}
	if strings.TrimSpace(*name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price *float64) error {
	if price == nil {
		return nil
	}
	money, err := positiveMoney(*price)
	if err != nil {
		return err
	}
	c.price = &money
	return nil
}

func positiveMoney(amount float64) (kernel.Money, error) {
	money, err := kernel.NewMoneyFromFloat(amount)
	if err != nil {
		return kernel.Money{}, err
	}
	if !money.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is not greater than 0", amount),
		)
	}
	return money, nil
}

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	productID, err := parseID("product", cmd.ProductID())
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

	repo := uow.ProductRepository()
	existing, err := repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if name := cmd.Name(); name != nil {
		if err = existing.Rename(*name, now); err != nil {
			return nil, err
		}
	}
	if price := cmd.Price(); price != nil {
		if err = existing.Reprice(*price, now); err != nil {
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
