package account

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the identity aggregate for a water-delivery customer.
// The email address is unique across customers; the password is stored only
// as a bcrypt hash produced by the auth layer.
type Customer struct {
	id            kernel.UUID
	firstName     string
	lastName      string
	email         string
	passwordHash  string
	address       string
	contactNumber string

	isConstructed bool
}

// NewCustomer creates a Customer with a validated identity and credentials.
func NewCustomer(id kernel.UUID, firstName, lastName, email, passwordHash, address, contactNumber string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.SetFirstName(firstName),
		c.SetLastName(lastName),
		c.SetEmail(email),
		c.SetPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	c.address = address
	c.contactNumber = contactNumber
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, firstName, lastName, email, passwordHash, address, contactNumber string) (*Customer, error) {
	return NewCustomer(id, firstName, lastName, email, passwordHash, address, contactNumber)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c *Customer) LastName() string { return c.lastName }

// Email returns the customer's unique email address.
func (c *Customer) Email() string { return c.email }

// PasswordHash returns the stored bcrypt hash.
func (c *Customer) PasswordHash() string { return c.passwordHash }

// Address returns the customer's default delivery address.
func (c *Customer) Address() string { return c.address }

// ContactNumber returns the customer's contact number.
func (c *Customer) ContactNumber() string { return c.contactNumber }

// SetFirstName updates the first name; it must not be empty.
func (c *Customer) SetFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	c.firstName = firstName
	return nil
}

// SetLastName updates the last name; it must not be empty.
func (c *Customer) SetLastName(lastName string) error {
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	c.lastName = lastName
	return nil
}

// SetEmail updates the email address; it must look like an address.
func (c *Customer) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	c.email = email
	return nil
}

// SetPasswordHash replaces the stored credential hash.
func (c *Customer) SetPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	c.passwordHash = hash
	return nil
}

// SetAddress updates the default delivery address.
func (c *Customer) SetAddress(address string) {
	c.address = address
}

// SetContactNumber updates the contact number.
func (c *Customer) SetContactNumber(contactNumber string) {
	c.contactNumber = contactNumber
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
