package commands_test

import (
	"testing"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newActiveDriver(t *testing.T) *account.Driver {
	t.Helper()
	driver, err := account.NewDriver(
		kernel.NewUUID(), "Imran", "Shah", "+92-300-1234567", "$2a$10$hash", "6000L bowser", 1.5)
	require.NoError(t, err)
	return driver
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	driver := newActiveDriver(t)
	staffID := kernel.NewUUID()
	cmd, _ := commands.NewAssignDriverCommand(aggregate.ID(), driver.ID(), staffID)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, aggregate.Driver())
	assert.True(t, aggregate.Driver().IsEqual(driver.ID()))
	require.NotNil(t, aggregate.Staff())
	assert.True(t, aggregate.Staff().IsEqual(staffID))
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_InactiveDriver(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	driver := newActiveDriver(t)
	driver.Deactivate()
	cmd, _ := commands.NewAssignDriverCommand(aggregate.ID(), driver.ID(), kernel.NewUUID())

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDriverIsNotActive)
}
