package http

import (
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders - places an order with snapshots of the
// customer and of every product at this instant.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	lines := make([]services.RequestedLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, services.RequestedLine{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerId, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(params.Skip, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(list))
}

// ListOrdersByCustomer handles GET /orders/customer/{customer_id}.
func (s *Server) ListOrdersByCustomer(
	ctx echo.Context,
	customerID servers.CustomerId,
	params servers.ListOrdersByCustomerParams,
) error {
	query, err := queries.NewListOrdersByCustomerQuery(customerID, params.Skip, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.queries.ListOrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(list))
}

// ListOrdersByStatus handles GET /orders/status/{status}.
func (s *Server) ListOrdersByStatus(
	ctx echo.Context,
	status servers.OrderStatus,
	params servers.ListOrdersByStatusParams,
) error {
	parsed, err := order.ParseStatus(string(status))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(parsed, params.Skip, params.Limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	list, err := s.queries.ListOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(list))
}

// GetOrder handles GET /orders/{order_id}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrderStatus handles PATCH /orders/{order_id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /orders/{order_id}. Orders in any status can be
// deleted.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
