package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand represents a customer asking staff to cancel an
// order that has already progressed past Pairing. The request marks the order
// for review, it does not change the delivery status.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a command to flag an order for
// cancellation review. A reason is required.
func NewRequestCancellationCommand(
	orderID, customerID kernel.UUID, reason string,
) (RequestCancellationCommand, error) {
	cmd := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setReason(reason),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to flag.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the requesting customer.
func (c RequestCancellationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Reason returns the customer's stated reason.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RequestCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	c.reason = reason
	return nil
}
