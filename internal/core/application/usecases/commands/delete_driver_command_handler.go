package commands

import (
	"context"
)

// DeleteDriverCommandHandler removes a driver account.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	repo := uow.DriverRepository()
	if _, err := repo.Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
