package commands_test

import (
	"testing"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCustomerCommand(
		kernel.NewUUID(), "Ayesha", "Khan", "ayesha@example.com", "$2a$10$hash", "12 Canal Road", "+92-42-111")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ayesha@example.com").
			Return(nil, errs.NewObjectNotFoundError("customer", "ayesha@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCustomerCommand(
		kernel.NewUUID(), "Ayesha", "Khan", "ayesha@example.com", "$2a$10$hash", "", "")
	require.NoError(t, err)

	existing, err := account.NewCustomer(
		kernel.NewUUID(), "Ayesha", "Khan", "ayesha@example.com", "$2a$10$hash", "", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ayesha@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}
