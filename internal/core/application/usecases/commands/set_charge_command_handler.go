package commands

import (
	"context"

	"watertanker/internal/core/domain/model/order"
)

// SetChargeCommandHandler quotes a delivery charge on an order still in
// Pairing status. The conditional update keeps a concurrent lifecycle
// transition from silently overwriting the quote.
type SetChargeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetChargeCommandHandler creates a handler for charge quoting operations.
func NewSetChargeCommandHandler(uowFactory OrderUoWFactory) SetChargeCommandHandler {
	return SetChargeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set charge command.
func (h *SetChargeCommandHandler) Handle(ctx context.Context, cmd SetChargeCommand) error {
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

	if err = aggregate.SetCharge(cmd.Amount(), cmd.StaffID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, order.Pairing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
