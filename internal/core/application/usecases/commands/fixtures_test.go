package commands_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, name, email string) *customer.Customer {
	t.Helper()
	address, err := kernel.NewEmail(email)
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), name, address, time.Now())
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, name string, amount float64) *product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), name, price, time.Now())
	require.NoError(t, err)
	return p
}

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	email, err := kernel.NewEmail("jane@x.com")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromFloat(10)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Keyboard", 3, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Jane", email, []order.LineItem{item},
		status, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}
