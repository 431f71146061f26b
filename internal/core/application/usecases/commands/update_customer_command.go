package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a customer editing their own profile.
// Nil fields are left unchanged.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	firstName     *string
	lastName      *string
	address       *string
	contactNumber *string
	passwordHash  *string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer profile.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName, address, contactNumber, passwordHash *string,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID:    customerID,
		firstName:     firstName,
		lastName:      lastName,
		address:       address,
		contactNumber: contactNumber,
		passwordHash:  passwordHash,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being updated.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// FirstName returns the new first name, or nil to keep the current one.
func (c UpdateCustomerCommand) FirstName() *string { return c.firstName }

// LastName returns the new last name, or nil to keep the current one.
func (c UpdateCustomerCommand) LastName() *string { return c.lastName }

// Address returns the new address, or nil to keep the current one.
func (c UpdateCustomerCommand) Address() *string { return c.address }

// ContactNumber returns the new contact number, or nil to keep the current one.
func (c UpdateCustomerCommand) ContactNumber() *string { return c.contactNumber }

// PasswordHash returns the new password hash, or nil to keep the current one.
func (c UpdateCustomerCommand) PasswordHash() *string { return c.passwordHash }
