package commands

import (
	"context"
)

// DeleteCustomerCommandHandler removes a customer account together with the
// customer's orders, payments, feedback, and recycling submissions, all in
// one transaction. The lookup before the delete makes a missing account
// surface as ErrObjectNotFound.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerPurgeUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for account removal.
func NewDeleteCustomerCommandHandler(uowFactory CustomerPurgeUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account removal.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	customerID := cmd.CustomerID()
	repo := uow.CustomerRepository()
	if _, err := repo.Get(ctx, customerID); err != nil {
		return err
	}

	// Payments reference orders, so they go before the orders do.
	if err := uow.PaymentRepository().DeleteAllByCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := uow.FeedbackRepository().DeleteAllByCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := uow.RecyclingRepository().DeleteAllByCustomer(ctx, customerID); err != nil {
		return err
	}
	if err := uow.OrderRepository().DeleteAllByCustomer(ctx, customerID); err != nil {
		return err
	}

	if err := repo.Delete(ctx, customerID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
