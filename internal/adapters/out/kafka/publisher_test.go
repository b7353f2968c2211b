package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEvent(t *testing.T, eventType order.EventType, from, to order.Status) order.Event {
	t.Helper()
	total, err := kernel.NewMoneyFromFloat(30)
	require.NoError(t, err)
	return order.Event{
		Type:       eventType,
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		From:       from,
		To:         to,
		Total:      total,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, ParseBrokers(""))
}

func TestToMessage(t *testing.T) {
	t.Run("status change", func(t *testing.T) {
		e := newEvent(t, order.EventStatusChanged, order.Pending, order.Paid)

		msg, err := toMessage(e)

		require.NoError(t, err)
		assert.Equal(t, e.OrderID.String(), string(msg.Key))
		var payload EventMessage
		require.NoError(t, json.Unmarshal(msg.Value, &payload))
		assert.Equal(t, "order.status_changed", payload.Type)
		assert.Equal(t, "PENDING", payload.FromStatus)
		assert.Equal(t, "PAID", payload.ToStatus)
		assert.InDelta(t, 30.0, payload.TotalPrice, 0)
		assert.True(t, e.OccurredAt.Equal(payload.OccurredAt))
		assert.Equal(t, []kafka.Header{{Key: "event_type", Value: []byte("order.status_changed")}}, msg.Headers)
	})

	t.Run("creation omits from status", func(t *testing.T) {
		msg, err := toMessage(newEvent(t, order.EventCreated, order.Unknown, order.Pending))

		require.NoError(t, err)
		assert.NotContains(t, string(msg.Value), "from_status")
	})
}

func TestOrderEventPublisher_Publish(t *testing.T) {
	t.Run("writes one batch", func(t *testing.T) {
		ctx := t.Context()
		writer := new(mockWriter)
		writer.On("WriteMessages", ctx, mock.MatchedBy(func(msgs []kafka.Message) bool {
			return len(msgs) == 2
		})).Return(nil).Once()
		publisher := NewOrderEventPublisher(writer, discardLogger())

		err := publisher.Publish(ctx,
			newEvent(t, order.EventCreated, order.Unknown, order.Pending),
			newEvent(t, order.EventDeleted, order.Pending, order.Pending),
		)

		require.NoError(t, err)
		writer.AssertExpectations(t)
	})

	t.Run("no events skips the writer", func(t *testing.T) {
		writer := new(mockWriter)

		require.NoError(t, NewOrderEventPublisher(writer, discardLogger()).Publish(t.Context()))
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("writer error is wrapped", func(t *testing.T) {
		writer := new(mockWriter)
		broken := errors.New("leader not available")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(broken).Once()

		err := NewOrderEventPublisher(writer, discardLogger()).
			Publish(t.Context(), newEvent(t, order.EventCreated, order.Unknown, order.Pending))

		require.ErrorIs(t, err, broken)
	})
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(discardLogger())

	require.NoError(t, p.Publish(t.Context(), newEvent(t, order.EventCreated, order.Unknown, order.Pending)))
	require.NoError(t, p.Close())
}
