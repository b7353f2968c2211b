package queries_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail("jane@x.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Jane", email, time.Now())
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, buyer *customer.Customer, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(10)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Keyboard", 3, price)
	require.NoError(t, err)
	now := time.Now()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), buyer.ID(), buyer.Name(), buyer.Email(),
		[]order.LineItem{item}, status, now, now,
	)
	require.NoError(t, err)
	return o
}

func intPtr(v int) *int {
	return &v
}
