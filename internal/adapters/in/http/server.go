package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side use cases the API drives.
type CommandHandlers struct {
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
}

// QueryHandlers groups the read-side use cases the API drives.
type QueryHandlers struct {
	GetCustomer          queries.GetCustomerQueryHandler
	ListCustomers        queries.ListCustomersQueryHandler
	GetProduct           queries.GetProductQueryHandler
	ListProducts         queries.ListProductsQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	ListOrdersByCustomer queries.ListOrdersByCustomerQueryHandler
	ListOrdersByStatus   queries.ListOrdersByStatusQueryHandler
}

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

// Info is the service identity shown by the banner endpoint.
type Info struct {
	Title   string
	Version string
	Docs    string
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	health   HealthCheck
	info     Info
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	cmds CommandHandlers,
	qs QueryHandlers,
	health HealthCheck,
	info Info,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		health:   health,
		info:     info,
		logger:   logger.With("component", "http"),
	}
}

// GetRoot handles GET / - service banner.
func (s *Server) GetRoot(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Banner{
		Message: s.info.Title,
		Version: s.info.Version,
		Docs:    s.info.Docs,
	})
}

// GetHealth handles GET /health - pings the database.
func (s *Server) GetHealth(ctx echo.Context) error {
	if err := s.health(ctx.Request().Context()); err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "health check failed", "error", err)
		reason := err.Error()
		return ctx.JSON(http.StatusServiceUnavailable, servers.Health{Status: "unhealthy", Error: &reason})
	}
	return ctx.JSON(http.StatusOK, servers.Health{Status: "healthy"})
}
