package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "autoservice/internal/adapters/out/postgres"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SQLQueriesTestSuite covers the queries that read tables directly.
type SQLQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *SQLQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, nil, nil)
}

func (suite *SQLQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SQLQueriesTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE parts, service_orders, order_parts, order_required_tasks, order_completed_tasks",
	).Error
	suite.Require().NoError(err)
}

func (suite *SQLQueriesTestSuite) addPart(name, price string, stock int) *part.Part {
	amount, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	p, err := part.NewPart(part.Details{Name: name, Category: "Filters", PartNumber: "F-" + name}, amount, stock)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().PartRepository().Add(context.Background(), p))
	return p
}

func (suite *SQLQueriesTestSuite) addOrder(mutate func(o *order.ServiceOrder)) *order.ServiceOrder {
	o, err := order.NewServiceOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "")
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(o)
	}
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *SQLQueriesTestSuite) TestLowStock_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetLowStockPartsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewDefaultLowStockPartsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SQLQueriesTestSuite) TestLowStock_ThresholdIsInclusive_SortedByStock() {
	suite.addPart("oil", "12.00", 6)
	atThreshold := suite.addPart("air", "8.00", 5)
	empty := suite.addPart("cabin", "15.50", 0)
	suite.addPart("fuel", "30.00", 20)
	handler := queries.NewGetLowStockPartsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewDefaultLowStockPartsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID().IsEqual(empty.ID()))
	suite.False(result[0].IsAvailable())
	suite.Equal("15.50", result[0].Price().String())
	suite.True(result[1].ID().IsEqual(atThreshold.ID()))
	suite.Equal("F-air", result[1].Details().PartNumber)
}

func (suite *SQLQueriesTestSuite) TestLowStock_ZeroThreshold_ReturnsOutOfStockOnly() {
	suite.addPart("oil", "12.00", 1)
	empty := suite.addPart("cabin", "15.50", 0)
	query, err := queries.NewGetLowStockPartsQuery(0)
	suite.Require().NoError(err)

	result, err := queries.NewGetLowStockPartsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(empty.ID()))
}

func (suite *SQLQueriesTestSuite) TestInventoryValue() {
	handler := queries.NewGetInventoryValueQueryHandler(suite.db)

	empty, err := handler.Handle(context.Background(), queries.NewGetInventoryValueQuery())
	suite.Require().NoError(err)
	suite.Equal("0.00", empty.String())

	suite.addPart("oil", "2.50", 4)
	suite.addPart("air", "100.00", 0)
	suite.addPart("cabin", "0.10", 3)

	total, err := handler.Handle(context.Background(), queries.NewGetInventoryValueQuery())

	suite.Require().NoError(err)
	suite.Equal("10.30", total.String())
}

func (suite *SQLQueriesTestSuite) TestActiveOrders_ExcludeCompletedAndCancelled() {
	open1 := suite.addOrder(nil)
	open2 := suite.addOrder(func(o *order.ServiceOrder) {
		suite.Require().NoError(o.AddRequiredTask("inspect"))
	})
	suite.addOrder(func(o *order.ServiceOrder) {
		suite.Require().NoError(o.Close())
	})
	suite.addOrder(func(o *order.ServiceOrder) {
		_, err := o.Cancel()
		suite.Require().NoError(err)
	})
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.ElementsMatch([]kernel.UUID{open1.ID(), open2.ID()}, result)
	for i := range len(result) - 1 {
		suite.Less(result[i].String(), result[i+1].String())
	}
}

func (suite *SQLQueriesTestSuite) TestActiveOrders_ContextCancellation_ReturnsError() {
	suite.addOrder(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *SQLQueriesTestSuite) TestReaders_SeeCommittedState() {
	p := suite.addPart("oil", "12.00", 3)
	o := suite.addOrder(nil)
	uow := suite.factory.Create()

	gotPart, err := queries.NewGetPartQueryHandler(uow.PartRepository()).
		Handle(context.Background(), mustPartQuery(suite, p.ID()))
	suite.Require().NoError(err)
	suite.Equal("IN_STOCK - 3 units available", gotPart.AvailabilityStatus())

	gotOrder, err := queries.NewGetOrderQueryHandler(uow.OrderRepository()).
		Handle(context.Background(), mustOrderQuery(suite, o.ID()))
	suite.Require().NoError(err)
	suite.Equal(order.Open, gotOrder.Status())
}

func mustPartQuery(suite *SQLQueriesTestSuite, id kernel.UUID) queries.GetPartQuery {
	q, err := queries.NewGetPartQuery(id)
	suite.Require().NoError(err)
	return q
}

func mustOrderQuery(suite *SQLQueriesTestSuite, id kernel.UUID) queries.GetOrderQuery {
	q, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)
	return q
}

func TestSQLQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(SQLQueriesTestSuite))
}
