package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

const (
	nameMinLength = 1
	nameMaxLength = 200
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry. Its current name and price are copied into
// order line items at placement time; later changes do not affect orders.
type Product struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewProduct adds a product to the catalog. Price must be greater than zero.
func NewProduct(id kernel.UUID, name string, price kernel.Money, now time.Time) (*Product, error) {
	now = now.UTC().Truncate(time.Microsecond)
	return RestoreProduct(id, name, price, now, now)
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, createdAt, updatedAt time.Time) (*Product, error) {
	p := &Product{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Rename changes the catalog name.
func (p *Product) Rename(name string, now time.Time) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.touch(now)
	return nil
}

// Reprice changes the current price. Existing orders keep their snapshot.
func (p *Product) Reprice(price kernel.Money, now time.Time) error {
	if err := p.setPrice(price); err != nil {
		return err
	}
	p.touch(now)
	return nil
}

func (p *Product) touch(now time.Time) {
	p.updatedAt = now.UTC().Truncate(time.Microsecond)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	if n := utf8.RuneCountInString(name); n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLength, nameMaxLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
