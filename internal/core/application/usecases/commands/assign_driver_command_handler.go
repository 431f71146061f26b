package commands

import (
	"context"
	"errors"
)

// ErrDriverIsNotActive is returned when the driver chosen for an assignment
// has been deactivated.
var ErrDriverIsNotActive = errors.New("driver is not active")

// AssignDriverCommandHandler pairs a driver with an order. The driver must
// exist and be active; the order must not be in a terminal status.
type AssignDriverCommandHandler struct {
	uowFactory OrderDriverUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory OrderDriverUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign driver command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driver.IsActive() {
		return ErrDriverIsNotActive
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID(), cmd.StaffID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
