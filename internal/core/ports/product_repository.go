package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/product"
)

// ProductRepository is the product catalog.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs performs one bulk lookup and returns the subset of ids that
	// exist, in no particular order. Absent ids are not an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	List(ctx context.Context, page Page) ([]*product.Product, error)
	Delete(ctx context.Context, aggregate *product.Product) error
}
