package http

import (
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/generated/servers"
)

func toCustomer(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email().String(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCustomers(list []*customer.Customer) []servers.Customer {
	out := make([]servers.Customer, len(list))
	for i, c := range list {
		out[i] = toCustomer(c)
	}
	return out
}

func toProduct(p *product.Product) servers.Product {
	return servers.Product{
		Id:        p.ID().String(),
		Name:      p.Name(),
		Price:     p.Price().Float64(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toProducts(list []*product.Product) []servers.Product {
	out := make([]servers.Product, len(list))
	for i, p := range list {
		out[i] = toProduct(p)
	}
	return out
}

// toOrder includes the derived line and order totals.
func toOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			ProductId:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Float64(),
			TotalPrice:  item.Total().Float64(),
		})
	}

	return servers.Order{
		Id:            o.ID().String(),
		CustomerId:    o.CustomerID().String(),
		CustomerName:  o.CustomerName(),
		CustomerEmail: o.CustomerEmail().String(),
		Items:         items,
		Status:        servers.OrderStatus(o.Status().String()),
		TotalPrice:    o.Total().Float64(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toOrders(list []*order.Order) []servers.Order {
	out := make([]servers.Order, len(list))
	for i, o := range list {
		out[i] = toOrder(o)
	}
	return out
}
