package commands

import (
	"context"
	"errors"
	"time"

	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/payment"
)

// ErrOrderDoesNotBelongToCustomer is returned when a customer tries to act
// on an order placed by somebody else.
var ErrOrderDoesNotBelongToCustomer = errors.New("order does not belong to the customer")

// AcceptChargeCommandHandler settles an order: the customer accepts the
// quoted charge, the order moves to PendingPayment, and a payment record is
// written in the same transaction. The conditional status update rejects the
// acceptance when the order already left Pairing.
//
// Example:
//
//	handler := NewAcceptChargeCommandHandler(uowFactory)
//	cmd, _ := NewAcceptChargeCommand(orderID, customerID, kernel.NewUUID(), "txn_991")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("order is no longer awaiting acceptance")
//	case errors.Is(err, ErrOrderDoesNotBelongToCustomer):
//	    log.Println("not the customer's order")
//	case err != nil:
//	    log.Printf("acceptance failed: %v", err)
//	}
type AcceptChargeCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
}

// NewAcceptChargeCommandHandler creates a handler for charge acceptance.
func NewAcceptChargeCommandHandler(uowFactory OrderPaymentUoWFactory) AcceptChargeCommandHandler {
	return AcceptChargeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept charge command.
func (h *AcceptChargeCommandHandler) Handle(ctx context.Context, cmd AcceptChargeCommand) error {
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

	capturedAt := time.Now().UTC()
	if err = aggregate.AcceptCharge(capturedAt); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, aggregate, order.Pairing); err != nil {
		return err
	}

	record, err := payment.NewPayment(
		cmd.PaymentID(),
		aggregate.ID(),
		*aggregate.DriverCharge(),
		payment.StatusPaid,
		cmd.TransactionRef(),
		capturedAt,
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
