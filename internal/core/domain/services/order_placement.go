package services

import (
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/pkg/errs"
)

// RequestedLine is one (product, quantity) pair of an order request.
// ProductID is kept as received so unresolved ids can be echoed back verbatim.
type RequestedLine struct {
	ProductID string
	Quantity  int
}

// OrderPlacement assembles a new order from a customer, the requested lines
// and the result of a single bulk catalog lookup.
//
// The catalog slice is the only source of product names and prices for the
// whole placement: nothing is re-read afterwards, so every snapshot in the
// order comes from the same lookup.
//
// Example:
//
//	placement := services.NewOrderPlacement()
//	ids := placement.ProductIDs(lines)
//	products, _ := productRepo.GetByIDs(ctx, ids)
//	o, err := placement.Place(kernel.NewUUID(), c, lines, products, time.Now())
//	if errors.Is(err, errs.ErrInvalidReference) {
//	    // some product ids do not exist
//	}
type OrderPlacement struct{}

func NewOrderPlacement() OrderPlacement {
	return OrderPlacement{}
}

// ProductIDs returns the distinct well-formed product ids of lines in
// request order. Malformed ids are skipped; Place reports them as missing.
func (OrderPlacement) ProductIDs(lines []RequestedLine) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		id, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Place builds a Pending order with one line item per requested line.
//
// If any requested product is absent from catalog the whole placement fails
// with an InvalidReferenceError listing every unresolved id once, in request
// order. Repeated product ids yield one line item per occurrence.
func (OrderPlacement) Place(
	orderID kernel.UUID,
	buyer *customer.Customer,
	lines []RequestedLine,
	catalog []*product.Product,
	now time.Time,
) (*order.Order, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, order.ErrOrderHasNoItems
	}

	byID := make(map[kernel.UUID]*product.Product, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	items := make([]order.LineItem, 0, len(lines))
	missing := make([]string, 0)
	reported := make(map[string]struct{})
	for _, line := range lines {
		p, ok := resolve(byID, line.ProductID)
		if !ok {
			if _, dup := reported[line.ProductID]; !dup {
				reported[line.ProductID] = struct{}{}
				missing = append(missing, line.ProductID)
			}
			continue
		}

		item, err := order.NewLineItem(p.ID(), p.Name(), line.Quantity, p.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(missing) > 0 {
		return nil, errs.NewInvalidReferenceError("products", missing)
	}

	return order.NewOrder(orderID, buyer.ID(), buyer.Name(), buyer.Email(), items, now)
}

func resolve(byID map[kernel.UUID]*product.Product, rawID string) (*product.Product, bool) {
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, false
	}
	p, ok := byID[id]
	return p, ok
}
