package queries

import (
	"context"
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("product_id")
)

type GetProductQuery struct {
	productID string
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID string) (GetProductQuery, error) {
	if strings.TrimSpace(productID) == "" {
		return GetProductQuery{}, ErrProductIDIsRequired
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() string {
	return q.productID
}

type GetProductQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := parseID("product", query.ProductID())
	if err != nil {
		return nil, err
	}

	return h.products.Get(ctx, id)
}

type ListProductsQuery struct {
	page  ports.Page
	guard guard.ConstructorGuard
}

func NewListProductsQuery(skip, limit *int) (ListProductsQuery, error) {
	page, err := pageOf(skip, limit)
	if err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Page() ports.Page {
	return q.page
}

type ListProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewListProductsQueryHandler(products ports.ProductRepository) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.List(ctx, query.Page())
}
