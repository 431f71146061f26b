package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrUpdateStaffCommandIsNotConstructed = errors.New(
	"UpdateStaffCommand must be created via NewUpdateStaffCommand constructor",
)

// UpdateStaffCommand represents a superadmin editing a staff account.
// Nil fields are left unchanged.
type UpdateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID      kernel.UUID
	firstName    *string
	lastName     *string
	email        *string
	passwordHash *string

	guard guard.ConstructorGuard
}

// NewUpdateStaffCommand creates a command to update a staff account.
func NewUpdateStaffCommand(
	staffID kernel.UUID,
	firstName, lastName, email, passwordHash *string,
) (UpdateStaffCommand, error) {
	if err := staffID.Validate(); err != nil {
		return UpdateStaffCommand{}, err
	}

	return UpdateStaffCommand{
		staffID:      staffID,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member being updated.
func (c UpdateStaffCommand) StaffID() kernel.UUID { return c.staffID }

// FirstName returns the new first name, or nil to keep the current one.
func (c UpdateStaffCommand) FirstName() *string { return c.firstName }

// LastName returns the new last name, or nil to keep the current one.
func (c UpdateStaffCommand) LastName() *string { return c.lastName }

// Email returns the new email, or nil to keep the current one.
func (c UpdateStaffCommand) Email() *string { return c.email }

// PasswordHash returns the new password hash, or nil to keep the current one.
func (c UpdateStaffCommand) PasswordHash() *string { return c.passwordHash }
