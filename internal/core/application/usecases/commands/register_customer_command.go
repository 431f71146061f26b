package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a customer signup. The password arrives
// already hashed; plaintext never crosses the application boundary.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	firstName     string
	lastName      string
	email         string
	passwordHash  string
	address       string
	contactNumber string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	firstName, lastName, email, passwordHash, address, contactNumber string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		firstName:     firstName,
		lastName:      lastName,
		email:         email,
		address:       address,
		contactNumber: contactNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// FirstName returns the customer's first name.
func (c RegisterCustomerCommand) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c RegisterCustomerCommand) LastName() string { return c.lastName }

// Email returns the signup email.
func (c RegisterCustomerCommand) Email() string { return c.email }

// PasswordHash returns the bcrypt hash of the signup password.
func (c RegisterCustomerCommand) PasswordHash() string { return c.passwordHash }

// Address returns the default delivery address, possibly empty.
func (c RegisterCustomerCommand) Address() string { return c.address }

// ContactNumber returns the contact number, possibly empty.
func (c RegisterCustomerCommand) ContactNumber() string { return c.contactNumber }

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = hash
	return nil
}
