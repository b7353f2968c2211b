package customer

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

const (
	nameMinLength = 1
	nameMaxLength = 100
)

var (
	// ErrNameIsRequired is returned for a blank customer name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a buyer that orders reference. Email addresses are unique
// across customers; uniqueness is enforced by the application layer and
// the store, not by the aggregate.
type Customer struct {
	id        kernel.UUID
	name      string
	email     kernel.Email
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer registers a new customer.
func NewCustomer(id kernel.UUID, name string, email kernel.Email, now time.Time) (*Customer, error) {
	now = now.UTC().Truncate(time.Microsecond)
	return RestoreCustomer(id, name, email, now, now)
}

// RestoreCustomer rebuilds a customer from persisted state.
func RestoreCustomer(id kernel.UUID, name string, email kernel.Email, createdAt, updatedAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate returns ErrCustomerIsNotConstructed for nil or zero-value customers.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() kernel.Email {
	return c.email
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Rename changes the display name.
func (c *Customer) Rename(name string, now time.Time) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.touch(now)
	return nil
}

// ChangeEmail replaces the contact address.
func (c *Customer) ChangeEmail(email kernel.Email, now time.Time) error {
	if err := c.setEmail(email); err != nil {
		return err
	}
	c.touch(now)
	return nil
}

func (c *Customer) touch(now time.Time) {
	c.updatedAt = now.UTC().Truncate(time.Microsecond)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	if n := utf8.RuneCountInString(name); n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLength, nameMaxLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
