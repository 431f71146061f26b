package commands

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/pkg/errs"
)

// RegisterDriverCommandHandler creates a driver account. Contact numbers
// are unique across drivers. New drivers start active.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver signup.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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
	if _, err := repo.GetByContactNumber(ctx, cmd.ContactNumber()); err == nil {
		return errs.NewObjectAlreadyExistsError("driver contact number", cmd.ContactNumber())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	driver, err := account.NewDriver(
		cmd.DriverID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.ContactNumber(),
		cmd.PasswordHash(),
		cmd.VehicleDetails(),
		cmd.RatePerLitre(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
