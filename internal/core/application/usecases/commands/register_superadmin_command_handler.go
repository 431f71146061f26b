package commands

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/pkg/errs"
)

// RegisterSuperAdminCommandHandler creates a superadmin account. Emails are
// unique across superadmins.
type RegisterSuperAdminCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterSuperAdminCommandHandler creates a handler for superadmin registration.
func NewRegisterSuperAdminCommandHandler(uowFactory StaffUoWFactory) RegisterSuperAdminCommandHandler {
	return RegisterSuperAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the superadmin registration.
func (h *RegisterSuperAdminCommandHandler) Handle(ctx context.Context, cmd RegisterSuperAdminCommand) error {
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
	if _, err := repo.GetSuperAdminByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewObjectAlreadyExistsError("superadmin email", cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	admin, err := account.NewSuperAdmin(cmd.AdminID(), cmd.Email(), cmd.PasswordHash())
	if err != nil {
		return err
	}

	if err = repo.AddSuperAdmin(ctx, admin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
