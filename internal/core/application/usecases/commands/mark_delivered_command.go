package commands

import (
	"errors"

	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents completing a delivery that is on the road.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete a delivery.
func NewMarkDeliveredCommand(orderID kernel.UUID) (MarkDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
