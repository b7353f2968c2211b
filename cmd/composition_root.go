package cmd

import (
	"context"
	"log/slog"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/jobs"
	"ordermanagement/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot builds every component from the configuration and the
// shared infrastructure handles. Nothing is resolved at runtime.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   prometheus.Registerer
	logger     *slog.Logger

	customers ports.CustomerRepository
	products  ports.ProductRepository
	orders    ports.OrderRepository
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	registry prometheus.Registerer,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		registry:   registry,
		logger:     logger,
		customers:  postgres.NewCustomerRepository(gormDB),
		products:   postgres.NewProductRepository(gormDB),
		orders:     postgres.NewOrderRepository(gormDB),
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.orders)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
			UpdateCustomer:    c.CreateUpdateCustomerCommandHandler(),
			DeleteCustomer:    c.CreateDeleteCustomerCommandHandler(),
			CreateProduct:     c.CreateCreateProductCommandHandler(),
			UpdateProduct:     c.CreateUpdateProductCommandHandler(),
			DeleteProduct:     c.CreateDeleteProductCommandHandler(),
			CreateOrder:       c.CreateCreateOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		},
		httpin.QueryHandlers{
			GetCustomer:          queries.NewGetCustomerQueryHandler(c.customers),
			ListCustomers:        queries.NewListCustomersQueryHandler(c.customers),
			GetProduct:           queries.NewGetProductQueryHandler(c.products),
			ListProducts:         queries.NewListProductsQueryHandler(c.products),
			GetOrder:             queries.NewGetOrderQueryHandler(c.orders),
			ListOrders:           queries.NewListOrdersQueryHandler(c.orders),
			ListOrdersByCustomer: queries.NewListOrdersByCustomerQueryHandler(c.customers, c.orders),
			ListOrdersByStatus:   queries.NewListOrdersByStatusQueryHandler(c.orders),
		},
		func(ctx context.Context) error {
			return postgres.Ping(ctx, c.gormDB)
		},
		httpin.Info{
			Title:   c.config.APITitle,
			Version: c.config.APIVersion,
			Docs:    "/swagger/index.html",
		},
		c.logger,
	)
}

// CreateJobManager registers the background jobs; the caller starts them.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statsJob := jobs.NewOrderStatsJob(
		c.CreateGetOrderStatsQueryHandler(),
		metrics.NewOrderMetrics(c.registry),
		c.config.StatsJobSchedule,
		c.logger,
	)
	return jobs.NewJobManager().Register("order stats", statsJob)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
