package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrSetChargeCommandIsNotConstructed = errors.New(
	"SetChargeCommand must be created via NewSetChargeCommand constructor",
)

// SetChargeCommand represents a staff member quoting a delivery charge on a
// newly placed order.
type SetChargeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID
	amount  float64

	guard guard.ConstructorGuard
}

// NewSetChargeCommand creates a command to quote a charge for an order.
func NewSetChargeCommand(orderID kernel.UUID, staffID kernel.UUID, amount float64) (SetChargeCommand, error) {
	cmd := SetChargeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaffID(staffID),
		cmd.setAmount(amount),
	); err != nil {
		return SetChargeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetChargeCommand) Validate() error {
	return c.guard.Validate(ErrSetChargeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being quoted.
func (c SetChargeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the identifier of the quoting staff member.
func (c SetChargeCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Amount returns the quoted charge.
func (c SetChargeCommand) Amount() float64 {
	return c.amount
}

func (c *SetChargeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetChargeCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *SetChargeCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("charge amount")
	}

	c.amount = amount
	return nil
}
