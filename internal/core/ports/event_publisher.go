package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order domain events to downstream consumers.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
