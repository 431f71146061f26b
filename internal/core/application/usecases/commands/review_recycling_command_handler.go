package commands

import (
	"context"
)

// ReviewRecyclingCommandHandler applies a staff review to a recycling
// submission. Credited submissions are final.
type ReviewRecyclingCommandHandler struct {
	uowFactory RecyclingUoWFactory
}

// NewReviewRecyclingCommandHandler creates a handler for submission review.
func NewReviewRecyclingCommandHandler(uowFactory RecyclingUoWFactory) ReviewRecyclingCommandHandler {
	return ReviewRecyclingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission review.
func (h *ReviewRecyclingCommandHandler) Handle(ctx context.Context, cmd ReviewRecyclingCommand) error {
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

	repo := uow.RecyclingRepository()
	submission, err := repo.Get(ctx, cmd.SubmissionID())
	if err != nil {
		return err
	}

	if err = submission.Review(cmd.Status(), cmd.EstimatedValue(), cmd.CreditedAmount()); err != nil {
		return err
	}

	if err = repo.Update(ctx, submission); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
