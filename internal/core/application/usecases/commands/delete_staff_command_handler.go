package commands

import (
	"context"
)

// DeleteStaffCommandHandler revokes a staff account.
type DeleteStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewDeleteStaffCommandHandler creates a handler for staff revocation.
func NewDeleteStaffCommandHandler(uowFactory StaffUoWFactory) DeleteStaffCommandHandler {
	return DeleteStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff revocation.
func (h *DeleteStaffCommandHandler) Handle(ctx context.Context, cmd DeleteStaffCommand) error {
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

	repo := uow.StaffRepository()
	if _, err := repo.GetStaff(ctx, cmd.StaffID()); err != nil {
		return err
	}

	if err := repo.DeleteStaff(ctx, cmd.StaffID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
