package commands

import (
	"context"

	"watertanker/internal/core/domain/model/order"
)

// DispatchOrderCommandHandler moves a settled order to EnRoute. The order
// must be in PendingPayment when the update lands.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDispatchOrderCommandHandler creates a handler for order dispatch.
func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, order.PendingPayment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
