package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/jobs"
	"ordermanagement/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsHandler struct {
	mock.Mock
}

func (m *MockStatsHandler) Handle(
	ctx context.Context,
	query queries.GetOrderStatsQuery,
) (queries.GetOrderStatsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatsQueryResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderStatsJob_Run(t *testing.T) {
	t.Run("sets gauges for every status", func(t *testing.T) {
		handler := new(MockStatsHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderStatsQueryResponse{
			ByStatus: map[order.Status]int64{order.Pending: 2, order.Paid: 1, order.Cancelled: 0},
			Total:    3,
		}, nil)
		gauges := metrics.NewOrderMetrics(prometheus.NewRegistry())

		job := jobs.NewOrderStatsJob(handler, gauges, "", discardLogger())
		require.NoError(t, job.Run(context.Background()))

		assert.InDelta(t, 2, testutil.ToFloat64(gauges.ByStatus.WithLabelValues("PENDING")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(gauges.ByStatus.WithLabelValues("PAID")), 0)
		assert.InDelta(t, 0, testutil.ToFloat64(gauges.ByStatus.WithLabelValues("CANCELLED")), 0)
		assert.InDelta(t, 3, testutil.ToFloat64(gauges.Total), 0)
		handler.AssertExpectations(t)
	})

	t.Run("propagates query errors and keeps gauges", func(t *testing.T) {
		handler := new(MockStatsHandler)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderStatsQueryResponse{}, errors.New("db down"))
		gauges := metrics.NewOrderMetrics(prometheus.NewRegistry())
		gauges.Total.Set(7)

		job := jobs.NewOrderStatsJob(handler, gauges, "", discardLogger())
		err := job.Run(context.Background())

		require.EqualError(t, err, "db down")
		assert.InDelta(t, 7, testutil.ToFloat64(gauges.Total), 0)
	})
}

func TestOrderStatsJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewOrderStatsJob(new(MockStatsHandler), nil, "every now and then", discardLogger())

	err := job.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "every now and then")
}

type fakeJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	return nil
}

func (f *fakeJob) Stop() {
	f.stopped = true
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops every job", func(t *testing.T) {
		a, b := &fakeJob{}, &fakeJob{}
		jm := jobs.NewJobManager().Register("a", a).Register("b", b)

		require.NoError(t, jm.StartAll())
		assert.True(t, a.started)
		assert.True(t, b.started)

		jm.StopAll()
		assert.True(t, a.stopped)
		assert.True(t, b.stopped)
	})

	t.Run("failed start stops jobs already running", func(t *testing.T) {
		a := &fakeJob{}
		b := &fakeJob{startErr: errors.New("boom")}
		jm := jobs.NewJobManager().Register("a", a).Register("b", b)

		err := jm.StartAll()

		require.EqualError(t, err, "failed to start b job: boom")
		assert.True(t, a.stopped)
		assert.False(t, b.stopped)
	})
}
