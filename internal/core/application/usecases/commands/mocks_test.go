package commands_test

import (
	"context"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.ServiceOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.ServiceOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.ServiceOrder)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.ServiceOrder)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) ReferencingOrders(ctx context.Context, partID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, partID)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockPartRepository struct{ mock.Mock }

func (m *MockPartRepository) Add(ctx context.Context, p *part.Part) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartRepository) Update(ctx context.Context, p *part.Part) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*part.Part)
	return p, args.Error(1)
}

func (m *MockPartRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*part.Part)
	return p, args.Error(1)
}

func (m *MockPartRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error) {
	args := m.Called(ctx, ids)
	parts, _ := args.Get(0).([]*part.Part)
	return parts, args.Error(1)
}

func (m *MockPartRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error) {
	args := m.Called(ctx, ids)
	parts, _ := args.Get(0).([]*part.Part)
	return parts, args.Error(1)
}

func (m *MockPartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies OrderUoW, PartUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartRepository() ports.PartRepository {
	return m.Called().Get(0).(ports.PartRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPartUoWFactory struct{ mock.Mock }

func (m *MockPartUoWFactory) Create() commands.PartUoW {
	return m.Called().Get(0).(commands.PartUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}
