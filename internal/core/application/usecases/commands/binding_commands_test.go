package commands_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bindingMocks struct {
	factory   *MockUoWFactory
	uow       *MockUoW
	orderRepo *MockOrderRepository
	partRepo  *MockPartRepository
}

// expectBinding loads o and p under lock. When persisted is true both aggregates
// are expected to be written back before the commit.
func expectBinding(t *testing.T, o *order.ServiceOrder, p *part.Part, persisted bool) bindingMocks {
	t.Helper()
	ctx := t.Context()
	m := bindingMocks{
		factory:   new(MockUoWFactory),
		uow:       new(MockUoW),
		orderRepo: new(MockOrderRepository),
		partRepo:  new(MockPartRepository),
	}
	calls := []*mock.Call{
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.orderRepo).Once(),
		m.uow.On("PartRepository").Return(m.partRepo).Once(),
		m.orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		m.partRepo.On("GetForUpdate", ctx, p.ID()).Return(p, nil).Once(),
	}
	if persisted {
		calls = append(calls,
			m.partRepo.On("Update", ctx, p).Return(nil).Once(),
			m.orderRepo.On("Update", ctx, o).Return(nil).Once(),
		)
	}
	mock.InOrder(calls...)
	m.uow.On("Commit", ctx).Return(nil).Maybe()
	m.uow.On("Rollback", ctx).Return(nil).Once()
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func TestNewAttachPartCommand(t *testing.T) {
	cmd, err := commands.NewAttachPartCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewDetachPartCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.AttachPartCommand{}.Validate(), commands.ErrAttachPartCommandIsNotConstructed)
	require.ErrorIs(t, commands.DetachPartCommand{}.Validate(), commands.ErrDetachPartCommandIsNotConstructed)
}

func TestAttachPartCommandHandler_Handle(t *testing.T) {
	t.Run("takes one unit", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 2)
		cmd, _ := commands.NewAttachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, true)

		h := commands.NewAttachPartCommandHandler(m.factory, services.NewPartBinder())
		got, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, got.HasPart(p.ID()))
		assert.Equal(t, 1, p.Stock())
		m.uow.AssertCalled(t, "Commit", t.Context())
		m.partRepo.AssertExpectations(t)
		m.orderRepo.AssertExpectations(t)
	})

	t.Run("repeated attach consumes nothing", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 2)
		_, err := services.NewPartBinder().Attach(o, p)
		require.NoError(t, err)
		cmd, _ := commands.NewAttachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, false)

		h := commands.NewAttachPartCommandHandler(m.factory, services.NewPartBinder())
		got, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{p.ID()}, got.Parts())
		assert.Equal(t, 1, p.Stock())
		m.uow.AssertCalled(t, "Commit", t.Context())
		m.partRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("out of stock", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 0)
		cmd, _ := commands.NewAttachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, false)

		h := commands.NewAttachPartCommandHandler(m.factory, services.NewPartBinder())
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.False(t, o.HasPart(p.ID()))
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("closed order", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 3)
		require.NoError(t, o.Close())
		cmd, _ := commands.NewAttachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, false)

		h := commands.NewAttachPartCommandHandler(m.factory, services.NewPartBinder())
		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 3, p.Stock())
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("part not found", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t)
		partID := kernel.NewUUID()
		cmd, _ := commands.NewAttachPartCommand(o.ID(), partID)

		orderRepo := new(MockOrderRepository)
		partRepo := new(MockPartRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("PartRepository").Return(partRepo)
		uow.On("Rollback", ctx).Return(nil)
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)
		partRepo.On("GetForUpdate", ctx, partID).Return(nil, errs.NewObjectNotFoundError("part", partID.String()))
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewAttachPartCommandHandler(factory, services.NewPartBinder())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, o.Parts())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestDetachPartCommandHandler_Handle(t *testing.T) {
	t.Run("returns the unit", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 1)
		_, err := services.NewPartBinder().Attach(o, p)
		require.NoError(t, err)
		cmd, _ := commands.NewDetachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, true)

		h := commands.NewDetachPartCommandHandler(m.factory, services.NewPartBinder())
		got, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Empty(t, got.Parts())
		assert.Equal(t, 1, p.Stock())
		assert.True(t, p.IsAvailable())
	})

	t.Run("unattached part is a no-op", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 4)
		cmd, _ := commands.NewDetachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, false)

		h := commands.NewDetachPartCommandHandler(m.factory, services.NewPartBinder())
		_, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 4, p.Stock())
		m.partRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("cancelled order", func(t *testing.T) {
		o, p := testOrder(t), testPart(t, 4)
		_, err := o.Cancel()
		require.NoError(t, err)
		cmd, _ := commands.NewDetachPartCommand(o.ID(), p.ID())
		m := expectBinding(t, o, p, false)

		h := commands.NewDetachPartCommandHandler(m.factory, services.NewPartBinder())
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("releases attached parts", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t)
		p1, p2 := testPart(t, 1), testPart(t, 5)
		binder := services.NewPartBinder()
		_, err := binder.Attach(o, p1)
		require.NoError(t, err)
		_, err = binder.Attach(o, p2)
		require.NoError(t, err)
		cmd, _ := commands.NewCancelOrderCommand(o.ID())

		orderRepo := new(MockOrderRepository)
		partRepo := new(MockPartRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("PartRepository").Return(partRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			partRepo.On("GetManyForUpdate", ctx, o.Parts()).Return([]*part.Part{p1, p2}, nil).Once(),
			partRepo.On("Update", ctx, p1).Return(nil).Once(),
			partRepo.On("Update", ctx, p2).Return(nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelOrderCommandHandler(factory, binder)
		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, got.Status())
		assert.False(t, got.Completed())
		assert.Empty(t, got.Parts())
		assert.Equal(t, 1, p1.Stock())
		assert.Equal(t, 5, p2.Stock())
		uow.AssertExpectations(t)
		partRepo.AssertExpectations(t)
	})

	t.Run("completed order", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t)
		require.NoError(t, o.Close())
		cmd, _ := commands.NewCancelOrderCommand(o.ID())

		orderRepo := new(MockOrderRepository)
		partRepo := new(MockPartRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			uow.On("PartRepository").Return(partRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelOrderCommandHandler(factory, services.NewPartBinder())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		partRepo.AssertNotCalled(t, "GetManyForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("missing part aborts before any change", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t)
		p := testPart(t, 2)
		_, err := services.NewPartBinder().Attach(o, p)
		require.NoError(t, err)
		cmd, _ := commands.NewCancelOrderCommand(o.ID())

		orderRepo := new(MockOrderRepository)
		partRepo := new(MockPartRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("PartRepository").Return(partRepo)
		uow.On("Rollback", ctx).Return(nil)
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil)
		partRepo.On("GetManyForUpdate", ctx, o.Parts()).Return([]*part.Part{}, nil)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewCancelOrderCommandHandler(factory, services.NewPartBinder())
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, 1, p.Stock())
	})
}
