package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"
	"watertanker/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request for a water delivery.
// Encapsulates the destination address and the amount of water in litres.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "12 Canal Road", 500)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	destination string
	waterAmount float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new water delivery order.
// Validates that both identifiers are valid, the destination is not empty, and
// the water amount is positive.
func NewCreateOrderCommand(
	orderID kernel.UUID, customerID kernel.UUID, destination string, waterAmount float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setDestination(destination),
		orderCommand.setWaterAmount(waterAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Destination returns the delivery destination address.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// WaterAmount returns the requested amount of water in litres.
func (c CreateOrderCommand) WaterAmount() float64 {
	return c.waterAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWaterAmount(waterAmount float64) error {
	if waterAmount <= 0 {
		return errs.NewValueIsInvalidError("water amount")
	}

	c.waterAmount = waterAmount
	return nil
}
