package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrAcceptChargeCommandIsNotConstructed = errors.New(
	"AcceptChargeCommand must be created via NewAcceptChargeCommand constructor",
)

// AcceptChargeCommand represents a customer accepting the quoted charge on
// their order, which settles the payment and moves the order forward.
type AcceptChargeCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	paymentID      kernel.UUID
	transactionRef string

	guard guard.ConstructorGuard
}

// NewAcceptChargeCommand creates a command to accept the quoted charge.
// The transaction reference may be empty when the gateway does not supply one.
func NewAcceptChargeCommand(
	orderID kernel.UUID, customerID kernel.UUID, paymentID kernel.UUID, transactionRef string,
) (AcceptChargeCommand, error) {
	cmd := AcceptChargeCommand{
		transactionRef: transactionRef,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return AcceptChargeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptChargeCommand) Validate() error {
	return c.guard.Validate(ErrAcceptChargeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c AcceptChargeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the accepting customer.
func (c AcceptChargeCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentID returns the identifier for the payment record to create.
func (c AcceptChargeCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// TransactionRef returns the gateway transaction reference, if any.
func (c AcceptChargeCommand) TransactionRef() string {
	return c.transactionRef
}

func (c *AcceptChargeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptChargeCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AcceptChargeCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
