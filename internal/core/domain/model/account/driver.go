package account

import (
	"errors"
	"fmt"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver is the identity aggregate for a tanker driver. Drivers log in by
// contact number, which is unique across drivers. The per-litre rate is the
// driver's asking price used by staff when quoting charges; the active flag
// removes a driver from assignment without deleting the record.
type Driver struct {
	id             kernel.UUID
	firstName      string
	lastName       string
	contactNumber  string
	passwordHash   string
	vehicleDetails string
	ratePerLitre   float64
	active         bool

	isConstructed bool
}

// NewDriver creates an active Driver with validated identity and rate.
func NewDriver(id kernel.UUID, firstName, lastName, contactNumber, passwordHash, vehicleDetails string, ratePerLitre float64) (*Driver, error) {
	d := &Driver{active: true, isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.SetFirstName(firstName),
		d.SetLastName(lastName),
		d.SetContactNumber(contactNumber),
		d.SetPasswordHash(passwordHash),
		d.SetRatePerLitre(ratePerLitre),
	); err != nil {
		return nil, err
	}

	d.vehicleDetails = vehicleDetails
	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence, including its
// active flag.
func RestoreDriver(id kernel.UUID, firstName, lastName, contactNumber, passwordHash, vehicleDetails string, ratePerLitre float64, active bool) (*Driver, error) {
	d, err := NewDriver(id, firstName, lastName, contactNumber, passwordHash, vehicleDetails, ratePerLitre)
	if err != nil {
		return nil, err
	}
	d.active = active
	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string { return d.firstName }

// LastName returns the driver's last name.
func (d *Driver) LastName() string { return d.lastName }

// ContactNumber returns the driver's unique contact number.
func (d *Driver) ContactNumber() string { return d.contactNumber }

// PasswordHash returns the stored bcrypt hash.
func (d *Driver) PasswordHash() string { return d.passwordHash }

// VehicleDetails returns the free-text vehicle description.
func (d *Driver) VehicleDetails() string { return d.vehicleDetails }

// RatePerLitre returns the driver's asking price per litre.
func (d *Driver) RatePerLitre() float64 { return d.ratePerLitre }

// IsActive reports whether the driver is available for assignment.
func (d *Driver) IsActive() bool { return d.active }

// Activate marks the driver available for assignment.
func (d *Driver) Activate() { d.active = true }

// Deactivate removes the driver from assignment.
func (d *Driver) Deactivate() { d.active = false }

// SetFirstName updates the first name; it must not be empty.
func (d *Driver) SetFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	d.firstName = firstName
	return nil
}

// SetLastName updates the last name; it must not be empty.
func (d *Driver) SetLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	d.lastName = lastName
	return nil
}

// SetContactNumber updates the login contact number; it must not be empty.
func (d *Driver) SetContactNumber(contactNumber string) error {
	if contactNumber == "" {
		return errs.NewValueIsRequiredError("contact number")
	}
	d.contactNumber = contactNumber
	return nil
}

// SetPasswordHash replaces the stored credential hash.
func (d *Driver) SetPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	d.passwordHash = hash
	return nil
}

// SetVehicleDetails updates the vehicle description.
func (d *Driver) SetVehicleDetails(details string) {
	d.vehicleDetails = details
}

// SetRatePerLitre updates the asking price; it must be positive.
func (d *Driver) SetRatePerLitre(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate per litre",
			fmt.Errorf("%f is not greater than 0", rate))
	}
	d.ratePerLitre = rate
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}
