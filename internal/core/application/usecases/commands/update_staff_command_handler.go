package commands

import (
	"context"
)

// UpdateStaffCommandHandler applies a partial update to a staff account.
type UpdateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewUpdateStaffCommandHandler creates a handler for staff account updates.
func NewUpdateStaffCommandHandler(uowFactory StaffUoWFactory) UpdateStaffCommandHandler {
	return UpdateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff account update.
func (h *UpdateStaffCommandHandler) Handle(ctx context.Context, cmd UpdateStaffCommand) error {
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
	staff, err := repo.GetStaff(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	if cmd.FirstName() != nil {
		if err = staff.SetFirstName(*cmd.FirstName()); err != nil {
			return err
		}
	}
	if cmd.LastName() != nil {
		if err = staff.SetLastName(*cmd.LastName()); err != nil {
			return err
		}
	}
	if cmd.Email() != nil {
		if err = staff.SetEmail(*cmd.Email()); err != nil {
			return err
		}
	}
	if cmd.PasswordHash() != nil {
		if err = staff.SetPasswordHash(*cmd.PasswordHash()); err != nil {
			return err
		}
	}

	if err = repo.UpdateStaff(ctx, staff); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
