package commands

import (
	"context"
)

// UpdateDriverCommandHandler applies a partial profile update to a driver
// account, including flipping availability.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver profile updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver profile update.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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
	driver, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.VehicleDetails() != nil {
		driver.SetVehicleDetails(*cmd.VehicleDetails())
	}
	if cmd.RatePerLitre() != nil {
		if err = driver.SetRatePerLitre(*cmd.RatePerLitre()); err != nil {
			return err
		}
	}
	if cmd.Active() != nil {
		if *cmd.Active() {
			driver.Activate()
		} else {
			driver.Deactivate()
		}
	}
	if cmd.PasswordHash() != nil {
		if err = driver.SetPasswordHash(*cmd.PasswordHash()); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
