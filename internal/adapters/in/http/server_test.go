package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	store   *memStore
	e       *echo.Echo
	healthy error
}

func (s *ServerTestSuite) SetupTest() {
	s.store = newMemStore()
	s.healthy = nil

	customers := memCustomers{s: s.store}
	products := memProducts{s: s.store}
	orders := memOrders{s: s.store}

	server := httpin.NewServer(
		httpin.CommandHandlers{
			CreateCustomer:    commands.NewCreateCustomerCommandHandler(memCustomerUoWFactory{s: s.store}),
			UpdateCustomer:    commands.NewUpdateCustomerCommandHandler(memCustomerUoWFactory{s: s.store}),
			DeleteCustomer:    commands.NewDeleteCustomerCommandHandler(memCustomerUoWFactory{s: s.store}),
			CreateProduct:     commands.NewCreateProductCommandHandler(memProductUoWFactory{s: s.store}),
			UpdateProduct:     commands.NewUpdateProductCommandHandler(memProductUoWFactory{s: s.store}),
			DeleteProduct:     commands.NewDeleteProductCommandHandler(memProductUoWFactory{s: s.store}),
			CreateOrder:       commands.NewCreateOrderCommandHandler(memUoWFactory{s: s.store}),
			UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(memOrderUoWFactory{s: s.store}),
			DeleteOrder:       commands.NewDeleteOrderCommandHandler(memOrderUoWFactory{s: s.store}),
		},
		httpin.QueryHandlers{
			GetCustomer:          queries.NewGetCustomerQueryHandler(customers),
			ListCustomers:        queries.NewListCustomersQueryHandler(customers),
			GetProduct:           queries.NewGetProductQueryHandler(products),
			ListProducts:         queries.NewListProductsQueryHandler(products),
			GetOrder:             queries.NewGetOrderQueryHandler(orders),
			ListOrders:           queries.NewListOrdersQueryHandler(orders),
			ListOrdersByCustomer: queries.NewListOrdersByCustomerQueryHandler(customers, orders),
			ListOrdersByStatus:   queries.NewListOrdersByStatusQueryHandler(orders),
		},
		func(context.Context) error { return s.healthy },
		httpin.Info{Title: "Order Management API", Version: "1.0.0", Docs: "/swagger/index.html"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.e = echo.New()
	s.Require().NoError(httpin.Mount(s.e, server))
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *ServerTestSuite, rec *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *ServerTestSuite) createCustomer(name, email string) servers.Customer {
	rec := s.do(http.MethodPost, "/customers", servers.CustomerCreate{Name: name, Email: email})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Customer](s, rec)
}

func (s *ServerTestSuite) createProduct(name string, price float64) servers.Product {
	rec := s.do(http.MethodPost, "/products", servers.ProductCreate{Name: name, Price: price})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Product](s, rec)
}

func (s *ServerTestSuite) createOrder(customerID string, items ...servers.OrderItemCreate) servers.Order {
	rec := s.do(http.MethodPost, "/orders", servers.OrderCreate{CustomerId: customerID, Items: items})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Order](s, rec)
}

func (s *ServerTestSuite) TestRootAndHealth() {
	rec := s.do(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(servers.Banner{Message: "Order Management API", Version: "1.0.0", Docs: "/swagger/index.html"},
		decode[servers.Banner](s, rec))

	rec = s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", decode[servers.Health](s, rec).Status)

	s.healthy = errors.New("connection refused")
	rec = s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("unhealthy", decode[servers.Health](s, rec).Status)
}

func (s *ServerTestSuite) TestCreateOrder_SnapshotsPricesAndTotals() {
	jane := s.createCustomer("Jane", "jane@x.com")
	keyboard := s.createProduct("Keyboard", 10.0)

	created := s.createOrder(jane.Id, servers.OrderItemCreate{ProductId: keyboard.Id, Quantity: 3})

	s.Equal(servers.PENDING, created.Status)
	s.Equal(jane.Id, created.CustomerId)
	s.Equal("Jane", created.CustomerName)
	s.Equal("jane@x.com", created.CustomerEmail)
	s.InDelta(30.0, created.TotalPrice, 0.0001)
	s.Require().Len(created.Items, 1)
	s.Equal(servers.OrderItem{
		ProductId:   keyboard.Id,
		ProductName: "Keyboard",
		Quantity:    3,
		UnitPrice:   10.0,
		TotalPrice:  30.0,
	}, created.Items[0])

	price := 99.0
	rec := s.do(http.MethodPut, "/products/"+keyboard.Id, servers.ProductUpdate{Price: &price})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/orders/"+created.Id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	fetched := decode[servers.Order](s, rec)
	s.InDelta(10.0, fetched.Items[0].UnitPrice, 0.0001)
	s.InDelta(30.0, fetched.TotalPrice, 0.0001)
}

func (s *ServerTestSuite) TestCreateOrder_TrailingSlash() {
	jane := s.createCustomer("Jane", "jane@x.com")
	mouse := s.createProduct("Mouse", 5.5)

	rec := s.do(http.MethodPost, "/orders/", servers.OrderCreate{
		CustomerId: jane.Id,
		Items:      []servers.OrderItemCreate{{ProductId: mouse.Id, Quantity: 2}},
	})

	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) TestCreateOrder_Failures() {
	jane := s.createCustomer("Jane", "jane@x.com")
	keyboard := s.createProduct("Keyboard", 10.0)
	missing := "0190b0a6-4c1f-7d4e-9d1c-3f1f9d2f6a11"

	s.Run("empty items is a validation error", func() {
		rec := s.do(http.MethodPost, "/orders", servers.OrderCreate{CustomerId: jane.Id, Items: []servers.OrderItemCreate{}})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("non positive quantity is a validation error", func() {
		rec := s.do(http.MethodPost, "/orders", servers.OrderCreate{
			CustomerId: jane.Id,
			Items:      []servers.OrderItemCreate{{ProductId: keyboard.Id, Quantity: 0}},
		})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("unknown customer is not found", func() {
		rec := s.do(http.MethodPost, "/orders", servers.OrderCreate{
			CustomerId: missing,
			Items:      []servers.OrderItemCreate{{ProductId: keyboard.Id, Quantity: 1}},
		})
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing products are listed", func() {
		rec := s.do(http.MethodPost, "/orders", servers.OrderCreate{
			CustomerId: jane.Id,
			Items: []servers.OrderItemCreate{
				{ProductId: keyboard.Id, Quantity: 1},
				{ProductId: missing, Quantity: 1},
				{ProductId: "not-a-uuid", Quantity: 1},
			},
		})
		s.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		body := decode[servers.Error](s, rec)
		s.Require().NotNil(body.Details)
		s.Equal([]string{missing, "not-a-uuid"}, *body.Details)
	})

	rec := s.do(http.MethodGet, "/orders", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]servers.Order](s, rec))
}

func (s *ServerTestSuite) TestUpdateOrderStatus_Lifecycle() {
	jane := s.createCustomer("Jane", "jane@x.com")
	keyboard := s.createProduct("Keyboard", 10.0)
	created := s.createOrder(jane.Id, servers.OrderItemCreate{ProductId: keyboard.Id, Quantity: 1})
	path := "/orders/" + created.Id + "/status"

	rec := s.do(http.MethodPatch, path, servers.OrderStatusUpdate{Status: servers.PAID})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(servers.PAID, decode[servers.Order](s, rec).Status)

	rec = s.do(http.MethodPatch, path, servers.OrderStatusUpdate{Status: servers.PENDING})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, path, servers.OrderStatusUpdate{Status: servers.CANCELLED})
	s.Require().Equal(http.StatusOK, rec.Code)

	for _, next := range []servers.OrderStatus{servers.PENDING, servers.PAID, servers.CANCELLED} {
		rec = s.do(http.MethodPatch, path, servers.OrderStatusUpdate{Status: next})
		s.Equal(http.StatusBadRequest, rec.Code, string(next))
	}

	rec = s.do(http.MethodPatch, path, map[string]string{"status": "SHIPPED"})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPatch, "/orders/0190b0a6-4c1f-7d4e-9d1c-3f1f9d2f6a11/status",
		servers.OrderStatusUpdate{Status: servers.PAID})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestOrderListings() {
	jane := s.createCustomer("Jane", "jane@x.com")
	john := s.createCustomer("John", "john@x.com")
	keyboard := s.createProduct("Keyboard", 10.0)
	line := servers.OrderItemCreate{ProductId: keyboard.Id, Quantity: 1}

	first := s.createOrder(jane.Id, line)
	second := s.createOrder(john.Id, line)
	third := s.createOrder(jane.Id, line)

	rec := s.do(http.MethodPatch, "/orders/"+third.Id+"/status", servers.OrderStatusUpdate{Status: servers.PAID})
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/orders?skip=1&limit=1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	page := decode[[]servers.Order](s, rec)
	s.Require().Len(page, 1)
	s.Equal(second.Id, page[0].Id)

	rec = s.do(http.MethodGet, "/orders/customer/"+jane.Id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	byCustomer := decode[[]servers.Order](s, rec)
	s.Require().Len(byCustomer, 2)
	s.Equal(first.Id, byCustomer[0].Id)
	s.Equal(third.Id, byCustomer[1].Id)

	rec = s.do(http.MethodGet, "/orders/status/PAID", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	paid := decode[[]servers.Order](s, rec)
	s.Require().Len(paid, 1)
	s.Equal(third.Id, paid[0].Id)

	rec = s.do(http.MethodGet, "/orders/status/SHIPPED", nil)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodGet, "/orders/customer/0190b0a6-4c1f-7d4e-9d1c-3f1f9d2f6a11", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	for _, query := range []string{"limit=0", "limit=1001", "skip=-1", "limit=abc"} {
		rec = s.do(http.MethodGet, "/orders?"+query, nil)
		s.Equal(http.StatusUnprocessableEntity, rec.Code, query)
	}
}

func (s *ServerTestSuite) TestDeleteOrder() {
	jane := s.createCustomer("Jane", "jane@x.com")
	keyboard := s.createProduct("Keyboard", 10.0)
	created := s.createOrder(jane.Id, servers.OrderItemCreate{ProductId: keyboard.Id, Quantity: 1})

	rec := s.do(http.MethodDelete, "/orders/"+created.Id, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/orders/"+created.Id, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/orders/"+created.Id, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/orders/not-a-uuid", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestCustomers() {
	jane := s.createCustomer("Jane", "jane@x.com")

	rec := s.do(http.MethodPost, "/customers", servers.CustomerCreate{Name: "Other", Email: "jane@x.com"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/customers", servers.CustomerCreate{Name: "Bad", Email: "not-an-email"})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	long := strings.Repeat("a", 364) + "@x.com"
	rec = s.do(http.MethodPost, "/customers", servers.CustomerCreate{Name: "Long", Email: long})
	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	name := "Jane Doe"
	rec = s.do(http.MethodPut, "/customers/"+jane.Id, servers.CustomerUpdate{Name: &name})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[servers.Customer](s, rec)
	s.Equal("Jane Doe", updated.Name)
	s.Equal("jane@x.com", updated.Email)

	s.createCustomer("John", "john@x.com")
	taken := "john@x.com"
	rec = s.do(http.MethodPut, "/customers/"+jane.Id, servers.CustomerUpdate{Email: &taken})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/customers?limit=1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]servers.Customer](s, rec), 1)

	rec = s.do(http.MethodDelete, "/customers/"+jane.Id, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/customers/"+jane.Id, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestProducts() {
	rec := s.do(http.MethodPost, "/products", servers.ProductCreate{Name: "Free", Price: 0})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPost, "/products", servers.ProductCreate{Name: "", Price: 1})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	keyboard := s.createProduct("Keyboard", 10.0)

	name := "Mechanical keyboard"
	rec = s.do(http.MethodPut, "/products/"+keyboard.Id, servers.ProductUpdate{Name: &name})
	s.Require().Equal(http.StatusOK, rec.Code)
	updated := decode[servers.Product](s, rec)
	s.Equal(name, updated.Name)
	s.InDelta(10.0, updated.Price, 0.0001)

	rec = s.do(http.MethodGet, "/products", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]servers.Product](s, rec), 1)

	rec = s.do(http.MethodDelete, "/products/"+keyboard.Id, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/products/"+keyboard.Id, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestUnknownRouteUsesErrorBody() {
	rec := s.do(http.MethodGet, "/nowhere", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(http.StatusNotFound, decode[servers.Error](s, rec).Code)
}

func (s *ServerTestSuite) TestNotFoundMessageStaysOnOneLine() {
	for _, path := range []string{"/orders/abc%0Adef", "/customers/abc%0D%0Adef", "/products/abc%0Adef"} {
		rec := s.do(http.MethodGet, path, nil)

		s.Require().Equal(http.StatusNotFound, rec.Code, path)
		body := decode[servers.Error](s, rec)
		s.Nil(body.Details, path)
		s.Contains(body.Message, "ID is: abc", path)
		s.NotContains(body.Message, "\n", path)
	}
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
