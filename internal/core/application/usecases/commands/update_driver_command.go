package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents editing a driver's working profile.
// Nil fields are left unchanged.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	vehicleDetails *string
	ratePerLitre   *float64
	active         *bool
	passwordHash   *string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver profile.
func NewUpdateDriverCommand(
	driverID kernel.UUID, vehicleDetails *string, ratePerLitre *float64, active *bool, passwordHash *string,
) (UpdateDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}

	return UpdateDriverCommand{
		driverID:       driverID,
		vehicleDetails: vehicleDetails,
		ratePerLitre:   ratePerLitre,
		active:         active,
		passwordHash:   passwordHash,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver being updated.
func (c UpdateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// VehicleDetails returns the new tanker description, or nil to keep the current one.
func (c UpdateDriverCommand) VehicleDetails() *string { return c.vehicleDetails }

// RatePerLitre returns the new rate, or nil to keep the current one.
func (c UpdateDriverCommand) RatePerLitre() *float64 { return c.ratePerLitre }

// Active returns the new availability flag, or nil to keep the current one.
func (c UpdateDriverCommand) Active() *bool { return c.active }

// PasswordHash returns the new password hash, or nil to keep the current one.
func (c UpdateDriverCommand) PasswordHash() *string { return c.passwordHash }
