package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrRegisterStaffCommandIsNotConstructed = errors.New(
	"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
)

// RegisterStaffCommand represents a superadmin provisioning a staff account.
// The creating superadmin is recorded on the new account.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	staffID      kernel.UUID
	firstName    string
	lastName     string
	email        string
	passwordHash string
	createdBy    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to provision a staff account.
func NewRegisterStaffCommand(
	staffID kernel.UUID,
	firstName, lastName, email, passwordHash string,
	createdBy kernel.UUID,
) (RegisterStaffCommand, error) {
	cmd := RegisterStaffCommand{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setPasswordHash(passwordHash),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// StaffID returns the identifier for the new staff member.
func (c RegisterStaffCommand) StaffID() kernel.UUID { return c.staffID }

// FirstName returns the staff member's first name.
func (c RegisterStaffCommand) FirstName() string { return c.firstName }

// LastName returns the staff member's last name.
func (c RegisterStaffCommand) LastName() string { return c.lastName }

// Email returns the staff login email.
func (c RegisterStaffCommand) Email() string { return c.email }

// PasswordHash returns the bcrypt hash of the provisioned password.
func (c RegisterStaffCommand) PasswordHash() string { return c.passwordHash }

// CreatedBy returns the identifier of the provisioning superadmin.
func (c RegisterStaffCommand) CreatedBy() kernel.UUID { return c.createdBy }

func (c *RegisterStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *RegisterStaffCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = hash
	return nil
}

func (c *RegisterStaffCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
