package commands

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/pkg/errs"
)

// RegisterStaffCommandHandler provisions a staff account. Emails are unique
// across staff.
type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterStaffCommandHandler creates a handler for staff provisioning.
func NewRegisterStaffCommandHandler(uowFactory StaffUoWFactory) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff registration.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) error {
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
	if _, err := repo.GetStaffByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewObjectAlreadyExistsError("staff email", cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	createdBy := cmd.CreatedBy()
	staff, err := account.NewStaff(
		cmd.StaffID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.PasswordHash(),
		&createdBy,
	)
	if err != nil {
		return err
	}

	if err = repo.AddStaff(ctx, staff); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
