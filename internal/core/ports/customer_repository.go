package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
)

// CustomerRepository is the customer directory. Lookups return
// ObjectNotFoundError for absent customers.
type CustomerRepository interface {
	// Add persists a new customer. A duplicate email yields AlreadyExistsError.
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)
	List(ctx context.Context, page Page) ([]*customer.Customer, error)
	Delete(ctx context.Context, aggregate *customer.Customer) error
}
