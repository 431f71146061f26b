package commands

import (
	"context"
)

// RequestCancellationCommandHandler flags a customer's order for
// cancellation review by staff.
type RequestCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestCancellationCommandHandler creates a handler for cancellation requests.
func NewRequestCancellationCommandHandler(uowFactory OrderUoWFactory) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation request.
func (h *RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
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

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrOrderDoesNotBelongToCustomer
	}

	if err = aggregate.RequestCancellation(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
