package commands_test

import (
	"testing"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptChargeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	require.NoError(t, aggregate.SetCharge(25.0, kernel.NewUUID()))
	cmd, _ := commands.NewAcceptChargeCommand(aggregate.ID(), aggregate.CustomerID(), kernel.NewUUID(), "txn_991")

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateInStatus", mock.Anything, aggregate, order.Pairing).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Run(func(args mock.Arguments) {
				record := args.Get(1).(*payment.Payment)
				assert.True(t, record.OrderID().IsEqual(aggregate.ID()))
				assert.Equal(t, 25.0, record.Amount())
				assert.Equal(t, payment.StatusPaid, record.Status())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptChargeCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.PendingPayment, aggregate.Status())
	assert.Equal(t, order.PaymentPaid, aggregate.PaymentStatus())
	require.NotNil(t, aggregate.PaymentDate())
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptChargeCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	require.NoError(t, aggregate.SetCharge(25.0, kernel.NewUUID()))
	cmd, _ := commands.NewAcceptChargeCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID(), "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptChargeCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderDoesNotBelongToCustomer)
}

func TestAcceptChargeCommandHandler_Handle_ChargeNotSet(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	cmd, _ := commands.NewAcceptChargeCommand(aggregate.ID(), aggregate.CustomerID(), kernel.NewUUID(), "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptChargeCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrChargeIsNotSet)
}
