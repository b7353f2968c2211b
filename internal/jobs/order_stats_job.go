package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultOrderStatsSchedule runs the statistics job once a minute.
const DefaultOrderStatsSchedule = "@every 1m"

// runTimeout bounds a single statistics pass.
const runTimeout = 30 * time.Second

type orderStatsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// OrderStatsJob periodically counts orders per status, exports the counts
// as Prometheus gauges and logs them.
type OrderStatsJob struct {
	handler  orderStatsHandler
	gauges   *metrics.OrderMetrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the job. An empty schedule falls back to
// DefaultOrderStatsSchedule; any standard cron expression or descriptor such as
// "@every 30s" is accepted.
func NewOrderStatsJob(
	handler orderStatsHandler,
	gauges *metrics.OrderMetrics,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultOrderStatsSchedule
	}
	return &OrderStatsJob{
		handler:  handler,
		gauges:   gauges,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start schedules the job. Returns an error for an unparsable schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Run performs a single statistics pass.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	attrs := make([]any, 0, 2*len(stats.ByStatus)+2)
	for _, status := range order.Statuses() {
		count := stats.ByStatus[status]
		if j.gauges != nil {
			j.gauges.ByStatus.WithLabelValues(status.String()).Set(float64(count))
		}
		attrs = append(attrs, status.String(), count)
	}
	if j.gauges != nil {
		j.gauges.Total.Set(float64(stats.Total))
	}

	attrs = append(attrs, "total", stats.Total)
	j.logger.InfoContext(ctx, "Order stats", attrs...)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
