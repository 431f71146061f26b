package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a driver signup. Drivers identify by
// contact number rather than email.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	firstName      string
	lastName       string
	contactNumber  string
	passwordHash   string
	vehicleDetails string
	ratePerLitre   float64

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	firstName, lastName, contactNumber, passwordHash, vehicleDetails string,
	ratePerLitre float64,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		firstName:      firstName,
		lastName:       lastName,
		vehicleDetails: vehicleDetails,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setContactNumber(contactNumber),
		cmd.setPasswordHash(passwordHash),
		cmd.setRatePerLitre(ratePerLitre),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID { return c.driverID }

// FirstName returns the driver's first name.
func (c RegisterDriverCommand) FirstName() string { return c.firstName }

// LastName returns the driver's last name.
func (c RegisterDriverCommand) LastName() string { return c.lastName }

// ContactNumber returns the driver's login contact number.
func (c RegisterDriverCommand) ContactNumber() string { return c.contactNumber }

// PasswordHash returns the bcrypt hash of the signup password.
func (c RegisterDriverCommand) PasswordHash() string { return c.passwordHash }

// VehicleDetails returns the tanker description, possibly empty.
func (c RegisterDriverCommand) VehicleDetails() string { return c.vehicleDetails }

// RatePerLitre returns the driver's delivery rate.
func (c RegisterDriverCommand) RatePerLitre() float64 { return c.ratePerLitre }

func (c *RegisterDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setContactNumber(contactNumber string) error {
	if contactNumber == "" {
		return errs.NewValueIsRequiredError("contact number")
	}

	c.contactNumber = contactNumber
	return nil
}

func (c *RegisterDriverCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = hash
	return nil
}

func (c *RegisterDriverCommand) setRatePerLitre(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidError("rate per litre")
	}

	c.ratePerLitre = rate
	return nil
}
