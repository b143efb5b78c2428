// Package jobs provides scheduled background tasks for the repair shop service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field in their schedules.
//
// # Available Jobs
//
// 1. InventoryAuditJob - logs every part whose stock is at or below the low stock
// threshold and the total inventory value. Runs hourly unless
// INVENTORY_AUDIT_SCHEDULE says otherwise.
//
// # Usage
//
//	audit := jobs.NewInventoryAuditJob(lowStockHandler, valueHandler, query, schedule, logger)
//	jobManager := jobs.NewJobManager(audit)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed audit is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
