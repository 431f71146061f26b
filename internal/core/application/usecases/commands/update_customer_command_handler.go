package commands

import (
	"context"
)

// UpdateCustomerCommandHandler applies a partial profile update to a
// customer account.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for profile updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	customer, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if cmd.FirstName() != nil {
		if err = customer.SetFirstName(*cmd.FirstName()); err != nil {
			return err
		}
	}
	if cmd.LastName() != nil {
		if err = customer.SetLastName(*cmd.LastName()); err != nil {
			return err
		}
	}
	if cmd.Address() != nil {
		customer.SetAddress(*cmd.Address())
	}
	if cmd.ContactNumber() != nil {
		customer.SetContactNumber(*cmd.ContactNumber())
	}
	if cmd.PasswordHash() != nil {
		if err = customer.SetPasswordHash(*cmd.PasswordHash()); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
