package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrDeleteStaffCommandIsNotConstructed = errors.New(
	"DeleteStaffCommand must be created via NewDeleteStaffCommand constructor",
)

// DeleteStaffCommand represents a superadmin revoking a staff account.
type DeleteStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStaffCommand creates a command to revoke a staff account.
func NewDeleteStaffCommand(staffID kernel.UUID) (DeleteStaffCommand, error) {
	if err := staffID.Validate(); err != nil {
		return DeleteStaffCommand{}, err
	}

	return DeleteStaffCommand{
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStaffCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member to revoke.
func (c DeleteStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}
