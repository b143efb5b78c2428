package jobs

import (
	"context"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultInventoryAuditSchedule runs the audit at the top of every hour.
// The expression includes a seconds field.
const DefaultInventoryAuditSchedule = "0 0 * * * *"

type (
	// LowStockPartsHandler lists the parts whose stock is at or below a threshold.
	LowStockPartsHandler interface {
		Handle(ctx context.Context, query queries.GetLowStockPartsQuery) ([]*part.Part, error)
	}

	// InventoryValueHandler sums price times stock over all parts.
	InventoryValueHandler interface {
		Handle(ctx context.Context, query queries.GetInventoryValueQuery) (kernel.Money, error)
	}
)

// InventoryAuditJob periodically reports parts that need reordering together with
// the current value of the inventory.
type InventoryAuditJob struct {
	lowStock LowStockPartsHandler
	value    InventoryValueHandler
	query    queries.GetLowStockPartsQuery
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewInventoryAuditJob creates the audit job. An empty schedule falls back to
// DefaultInventoryAuditSchedule.
func NewInventoryAuditJob(
	lowStock LowStockPartsHandler,
	value InventoryValueHandler,
	query queries.GetLowStockPartsQuery,
	schedule string,
	logger *zap.Logger,
) *InventoryAuditJob {
	if schedule == "" {
		schedule = DefaultInventoryAuditSchedule
	}
	return &InventoryAuditJob{
		lowStock: lowStock,
		value:    value,
		query:    query,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "inventory_audit_job")),
	}
}

// Start registers the audit with the scheduler and starts it.
func (j *InventoryAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("Inventory audit failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Inventory audit job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs a single audit. It is safe to call outside the scheduler.
func (j *InventoryAuditJob) Run(ctx context.Context) error {
	parts, err := j.lowStock.Handle(ctx, j.query)
	if err != nil {
		return err
	}
	value, err := j.value.Handle(ctx, queries.NewGetInventoryValueQuery())
	if err != nil {
		return err
	}

	for _, p := range parts {
		j.logger.Warn("Part stock is low",
			zap.String("part_id", p.ID().String()),
			zap.String("name", p.Name()),
			zap.Int("stock", p.Stock()),
			zap.Bool("available", p.IsAvailable()))
	}

	j.logger.Info("Inventory audit finished",
		zap.Int("threshold", j.query.Threshold()),
		zap.Int("low_stock_parts", len(parts)),
		zap.String("inventory_value", value.String()))
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *InventoryAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Inventory audit job stopped")
}
