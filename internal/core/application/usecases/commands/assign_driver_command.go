package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a staff member pairing a driver with an
// active order. Assignment never changes the order's delivery status.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	staffID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
func NewAssignDriverCommand(orderID, driverID, staffID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setStaffID(staffID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paired.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// StaffID returns the identifier of the assigning staff member.
func (c AssignDriverCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
