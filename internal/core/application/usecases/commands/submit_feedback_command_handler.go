package commands

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/errs"
)

// ErrOrderIsNotDelivered is returned when feedback is submitted for an order
// that has not been delivered yet.
var ErrOrderIsNotDelivered = errors.New("order is not delivered")

// SubmitFeedbackCommandHandler records a customer's rating for their own
// delivered order. One feedback entry per order.
type SubmitFeedbackCommandHandler struct {
	uowFactory OrderFeedbackUoWFactory
}

// NewSubmitFeedbackCommandHandler creates a handler for feedback submission.
func NewSubmitFeedbackCommandHandler(uowFactory OrderFeedbackUoWFactory) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback submission.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrOrderDoesNotBelongToCustomer
	}
	if aggregate.Status() != order.Delivered {
		return ErrOrderIsNotDelivered
	}

	feedbackRepo := uow.FeedbackRepository()
	if _, err = feedbackRepo.GetByOrder(ctx, cmd.OrderID()); err == nil {
		return errs.NewObjectAlreadyExistsError("feedback for order", cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	entry, err := feedback.NewFeedback(cmd.FeedbackID(), cmd.OrderID(), cmd.CustomerID(), cmd.Rating(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = feedbackRepo.Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
