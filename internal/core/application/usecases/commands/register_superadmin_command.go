package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrRegisterSuperAdminCommandIsNotConstructed = errors.New(
	"RegisterSuperAdminCommand must be created via NewRegisterSuperAdminCommand constructor",
)

// RegisterSuperAdminCommand represents the creation of a superadmin account.
type RegisterSuperAdminCommand struct { //nolint:recvcheck //using for validation
	adminID      kernel.UUID
	email        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewRegisterSuperAdminCommand creates a command to register a superadmin.
func NewRegisterSuperAdminCommand(
	adminID kernel.UUID, email, passwordHash string,
) (RegisterSuperAdminCommand, error) {
	cmd := RegisterSuperAdminCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterSuperAdminCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSuperAdminCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSuperAdminCommandIsNotConstructed)
}

// AdminID returns the identifier for the new superadmin.
func (c RegisterSuperAdminCommand) AdminID() kernel.UUID { return c.adminID }

// Email returns the superadmin login email.
func (c RegisterSuperAdminCommand) Email() string { return c.email }

// PasswordHash returns the bcrypt hash of the chosen password.
func (c RegisterSuperAdminCommand) PasswordHash() string { return c.passwordHash }

func (c *RegisterSuperAdminCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *RegisterSuperAdminCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = hash
	return nil
}
