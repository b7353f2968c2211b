// Package jobs provides scheduled background tasks for the order management
// service.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderStatsJob counts orders per status through the GetOrderStats query,
// publishes the counts as the order_management_orders_by_status and
// order_management_orders_total gauges and logs them. The schedule comes
// from STATS_JOB_SCHEDULE (default "@every 1m").
//
// # Usage
//
//	jobManager := jobs.NewJobManager().
//		Register("order stats", jobs.NewOrderStatsJob(handler, gauges, schedule, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. A failed start stops
// the jobs that were already running.
package jobs
