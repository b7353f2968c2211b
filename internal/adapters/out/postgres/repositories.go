package postgres

import (
	"ordermanagement/internal/adapters/out/postgres/customerrepo"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/adapters/out/postgres/productrepo"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"gorm.io/gorm"
)

// untracked drops aggregate notifications. Read paths use it because they
// never produce events.
type untracked struct{}

func (untracked) TrackAggregate(kernel.UUID, any) {}

// NewCustomerRepository returns a repository outside any unit of work.
func NewCustomerRepository(db *gorm.DB) ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(db)
}

func NewProductRepository(db *gorm.DB) ports.ProductRepository {
	return productrepo.NewGormProductRepository(db)
}

// NewOrderRepository returns an order repository for reads. Writes through
// it are not followed by event dispatch.
func NewOrderRepository(db *gorm.DB) ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(db, untracked{})
}
