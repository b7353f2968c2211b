package http

import (
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	query, err := queries.NewListCustomersQuery(params.Skip, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.queries.ListCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomers(list))
}

// CreateCustomer handles POST /customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCustomer(created))
}

// GetCustomer handles GET /customers/{customer_id}.
func (s *Server) GetCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(found))
}

// UpdateCustomer handles PUT /customers/{customer_id}. Omitted fields keep
// their current value.
func (s *Server) UpdateCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	var body servers.UpdateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, body.Name, body.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCustomer(updated))
}

// DeleteCustomer handles DELETE /customers/{customer_id}.
func (s *Server) DeleteCustomer(ctx echo.Context, customerID servers.CustomerId) error {
	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
