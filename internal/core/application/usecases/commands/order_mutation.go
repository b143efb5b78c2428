package commands

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
)

// mutateOrder locks one order, applies fn to it and persists the result in a
// single transaction. Any error from fn rolls the transaction back.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(o *order.ServiceOrder) error,
) (*order.ServiceOrder, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
