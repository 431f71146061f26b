package commands

import (
	"context"

	"watertanker/internal/core/domain/model/recycling"
)

// SubmitRecyclingCommandHandler records a recycling submission awaiting
// staff review.
type SubmitRecyclingCommandHandler struct {
	uowFactory RecyclingUoWFactory
}

// NewSubmitRecyclingCommandHandler creates a handler for recycling submissions.
func NewSubmitRecyclingCommandHandler(uowFactory RecyclingUoWFactory) SubmitRecyclingCommandHandler {
	return SubmitRecyclingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recycling submission.
func (h *SubmitRecyclingCommandHandler) Handle(ctx context.Context, cmd SubmitRecyclingCommand) error {
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

	submission, err := recycling.NewSubmission(
		cmd.SubmissionID(),
		cmd.CustomerID(),
		cmd.ImageURL(),
		cmd.RecyclableType(),
		cmd.PickupOption(),
		cmd.PickupAddress(),
		cmd.DropoffLocation(),
	)
	if err != nil {
		return err
	}

	if err = uow.RecyclingRepository().Add(ctx, submission); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
