package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	httpin "autoservice/internal/adapters/in/http"
	"autoservice/internal/adapters/out/kafka"
	"autoservice/internal/adapters/out/postgres"
	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
	"autoservice/internal/jobs"
	"autoservice/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "autoservice"

type CompositionRoot struct {
	config         Config
	gormDB         *gorm.DB
	logger         *zap.Logger
	publisher      ports.EventPublisher
	tracerProvider *sdktrace.TracerProvider
	uowFactory     ports.UnitOfWorkFactory
	binder         services.PartBinder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	var publisher ports.EventPublisher = kafka.NopPublisher{}
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, config.KafkaPartChangedTopic)
	}

	var traceOutput io.Writer
	if config.TracesToStdout() {
		traceOutput = os.Stdout
	}
	tp, err := tracing.NewTracerProvider(serviceName, traceOutput)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		logger:         logger,
		publisher:      publisher,
		tracerProvider: tp,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		binder:         services.NewPartBinder(),
	}, nil
}

func (c *CompositionRoot) CreateCreatePartCommandHandler() commands.CreatePartCommandHandler {
	return commands.NewCreatePartCommandHandler(c.partUoWFactory())
}

func (c *CompositionRoot) CreateChangePartStockCommandHandler() commands.ChangePartStockCommandHandler {
	return commands.NewChangePartStockCommandHandler(c.partUoWFactory())
}

func (c *CompositionRoot) CreateChangePartPriceCommandHandler() commands.ChangePartPriceCommandHandler {
	return commands.NewChangePartPriceCommandHandler(c.partUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachPartCommandHandler() commands.AttachPartCommandHandler {
	return commands.NewAttachPartCommandHandler(c.uowFactoryFunc(), c.binder)
}

func (c *CompositionRoot) CreateDetachPartCommandHandler() commands.DetachPartCommandHandler {
	return commands.NewDetachPartCommandHandler(c.uowFactoryFunc(), c.binder)
}

func (c *CompositionRoot) CreateAddRequiredTaskCommandHandler() commands.AddRequiredTaskCommandHandler {
	return commands.NewAddRequiredTaskCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	return commands.NewCompleteTaskCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactoryFunc(), c.binder)
}

func (c *CompositionRoot) CreateUpdateLaborCostCommandHandler() commands.UpdateLaborCostCommandHandler {
	return commands.NewUpdateLaborCostCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowFactoryFunc(), c.binder)
}

func (c *CompositionRoot) CreateDeletePartCommandHandler() commands.DeletePartCommandHandler {
	return commands.NewDeletePartCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateGetPartQueryHandler() queries.GetPartQueryHandler {
	return queries.NewGetPartQueryHandler(c.uowFactory.Create().PartRepository())
}

func (c *CompositionRoot) CreateGetLowStockPartsQueryHandler() queries.GetLowStockPartsQueryHandler {
	return queries.NewGetLowStockPartsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryValueQueryHandler() queries.GetInventoryValueQueryHandler {
	return queries.NewGetInventoryValueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderTotalCostQueryHandler() queries.GetOrderTotalCostQueryHandler {
	readers := c.uowFactory.Create()
	return queries.NewGetOrderTotalCostQueryHandler(
		readers.OrderRepository(),
		readers.PartRepository(),
		services.NewCostCalculator(),
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateRouter builds the echo instance serving the whole HTTP API.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		CreatePart:        c.CreateCreatePartCommandHandler(),
		ChangePartStock:   c.CreateChangePartStockCommandHandler(),
		ChangePartPrice:   c.CreateChangePartPriceCommandHandler(),
		DeletePart:        c.CreateDeletePartCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AttachPart:        c.CreateAttachPartCommandHandler(),
		DetachPart:        c.CreateDetachPartCommandHandler(),
		AddRequiredTask:   c.CreateAddRequiredTaskCommandHandler(),
		CompleteTask:      c.CreateCompleteTaskCommandHandler(),
		CloseOrder:        c.CreateCloseOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		UpdateLaborCost:   c.CreateUpdateLaborCostCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		GetPart:           c.CreateGetPartQueryHandler(),
		GetLowStockParts:  c.CreateGetLowStockPartsQueryHandler(),
		GetInventoryValue: c.CreateGetInventoryValueQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrderTotalCost: c.CreateGetOrderTotalCostQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
	})
	return httpin.NewRouter(server, c.logger, c.tracerProvider.Tracer(serviceName))
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	threshold, err := c.config.LowStockThresholdValue()
	if err != nil {
		return nil, err
	}
	query, err := queries.NewGetLowStockPartsQuery(threshold)
	if err != nil {
		return nil, err
	}

	audit := jobs.NewInventoryAuditJob(
		c.CreateGetLowStockPartsQueryHandler(),
		c.CreateGetInventoryValueQueryHandler(),
		query,
		c.config.InventoryAuditSchedule,
		c.logger,
	)
	return jobs.NewJobManager(audit), nil
}

// Close flushes pending spans and closes the event publisher.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return errors.Join(
		c.tracerProvider.Shutdown(ctx),
		c.publisher.Close(),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partUoWFactory() commands.PartUoWFactory {
	return FuncPartUoWFactory(func() commands.PartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncPartUoWFactory func() commands.PartUoW

func (f FuncPartUoWFactory) Create() commands.PartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
