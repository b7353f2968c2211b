package http_test

import (
	"context"
	"sort"
	"sync"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// memStore keeps copies of aggregates so handlers never share state with it.
type memStore struct {
	mu        sync.Mutex
	customers map[kernel.UUID]*customer.Customer
	products  map[kernel.UUID]*product.Product
	orders    map[kernel.UUID]*order.Order
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[kernel.UUID]*customer.Customer{},
		products:  map[kernel.UUID]*product.Product{},
		orders:    map[kernel.UUID]*order.Order{},
	}
}

func cloneCustomer(c *customer.Customer) *customer.Customer {
	cp, err := customer.RestoreCustomer(c.ID(), c.Name(), c.Email(), c.CreatedAt(), c.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return cp
}

func cloneProduct(p *product.Product) *product.Product {
	cp, err := product.RestoreProduct(p.ID(), p.Name(), p.Price(), p.CreatedAt(), p.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return cp
}

func cloneOrder(o *order.Order) *order.Order {
	cp, err := order.RestoreOrder(o.ID(), o.CustomerID(), o.CustomerName(), o.CustomerEmail(),
		o.Items(), o.Status(), o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return cp
}

func window[T any](items []T, page ports.Page) []T {
	if page.Skip() >= len(items) {
		return []T{}
	}
	items = items[page.Skip():]
	if len(items) > page.Limit() {
		items = items[:page.Limit()]
	}
	return items
}

type memCustomers struct{ s *memStore }

func (r memCustomers) Add(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.customers {
		if existing.Email().String() == c.Email().String() {
			return errs.NewAlreadyExistsError("email", c.Email().String())
		}
	}
	r.s.customers[c.ID()] = cloneCustomer(c)
	return nil
}

func (r memCustomers) Update(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID()]; !ok {
		return errs.NewObjectNotFoundError("customer", c.ID())
	}
	r.s.customers[c.ID()] = cloneCustomer(c)
	return nil
}

func (r memCustomers) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return cloneCustomer(c), nil
}

func (r memCustomers) GetByEmail(_ context.Context, email kernel.Email) (*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email().String() == email.String() {
			return cloneCustomer(c), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email.String())
}

func (r memCustomers) List(_ context.Context, page ports.Page) ([]*customer.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*customer.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		all = append(all, cloneCustomer(c))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID().String() < all[j].ID().String() })
	return window(all, page), nil
}

func (r memCustomers) Delete(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID()]; !ok {
		return errs.NewObjectNotFoundError("customer", c.ID())
	}
	delete(r.s.customers, c.ID())
	return nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Add(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID()] = cloneProduct(p)
	return nil
}

func (r memProducts) Update(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("product", p.ID())
	}
	r.s.products[p.ID()] = cloneProduct(p)
	return nil
}

func (r memProducts) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	return cloneProduct(p), nil
}

func (r memProducts) GetByIDs(_ context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	found := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			found = append(found, cloneProduct(p))
		}
	}
	return found, nil
}

func (r memProducts) List(_ context.Context, page ports.Page) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*product.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		all = append(all, cloneProduct(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID().String() < all[j].ID().String() })
	return window(all, page), nil
}

func (r memProducts) Delete(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("product", p.ID())
	}
	delete(r.s.products, p.ID())
	return nil
}

type memOrders struct{ s *memStore }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return cloneOrder(o), nil
}

func (r memOrders) List(_ context.Context, filter ports.OrderFilter, page ports.Page) ([]*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*order.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if filter.CustomerID != nil && !o.CustomerID().IsEqual(*filter.CustomerID) {
			continue
		}
		if filter.Status != order.Unknown && o.Status() != filter.Status {
			continue
		}
		all = append(all, cloneOrder(o))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID().String() < all[j].ID().String() })
	return window(all, page), nil
}

func (r memOrders) UpdateStatus(_ context.Context, o *order.Order, expected order.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	if stored.Status() != expected {
		return errs.NewConcurrentModificationError("order", o.ID())
	}
	r.s.orders[o.ID()] = cloneOrder(o)
	return nil
}

func (r memOrders) Delete(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	delete(r.s.orders, o.ID())
	return nil
}

func (r memOrders) CountByStatus(_ context.Context) (map[order.Status]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[order.Status]int64{}
	for _, s := range order.Statuses() {
		counts[s] = 0
	}
	for _, o := range r.s.orders {
		counts[o.Status()]++
	}
	return counts, nil
}

// memUoW satisfies every unit of work flavour the command handlers ask for.
// Writes are applied immediately; the tests never exercise rollback.
type memUoW struct{ s *memStore }

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) CustomerRepository() ports.CustomerRepository { return memCustomers(u) }
func (u memUoW) ProductRepository() ports.ProductRepository   { return memProducts(u) }
func (u memUoW) OrderRepository() ports.OrderRepository       { return memOrders(u) }

type (
	memUoWFactory         struct{ s *memStore }
	memCustomerUoWFactory struct{ s *memStore }
	memProductUoWFactory  struct{ s *memStore }
	memOrderUoWFactory    struct{ s *memStore }
)

func (f memUoWFactory) Create() commands.UoW                 { return memUoW(f) }
func (f memCustomerUoWFactory) Create() commands.CustomerUoW { return memUoW(f) }
func (f memProductUoWFactory) Create() commands.ProductUoW   { return memUoW(f) }
func (f memOrderUoWFactory) Create() commands.OrderUoW       { return memUoW(f) }
