package commands

import (
	"context"

	"watertanker/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes a delivery. The order must still be
// EnRoute when the update lands.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark delivered command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, order.EnRoute); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
