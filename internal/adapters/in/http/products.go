package http

import (
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query, err := queries.NewListProductsQuery(params.Skip, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.queries.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProducts(list))
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProduct(created))
}

func (s *Server) GetProduct(ctx echo.Context, productID servers.ProductId) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(found))
}

// UpdateProduct handles PUT /products/{product_id}. Orders already placed
// keep the price they were placed with.
func (s *Server) UpdateProduct(ctx echo.Context, productID servers.ProductId) error {
	var body servers.UpdateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, body.Name, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(updated))
}

func (s *Server) DeleteProduct(ctx echo.Context, productID servers.ProductId) error {
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
