package commands

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/pkg/errs"
)

// RegisterCustomerCommandHandler creates a customer account. Emails are
// unique across customers.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer signup.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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
	if _, err := repo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewObjectAlreadyExistsError("customer email", cmd.Email())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	customer, err := account.NewCustomer(
		cmd.CustomerID(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.PasswordHash(),
		cmd.Address(),
		cmd.ContactNumber(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
