package commands_test

import (
	"testing"
	"time"

	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/feedback"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := newPairingOrder(t)
	require.NoError(t, aggregate.SetCharge(25.0, kernel.NewUUID()))
	require.NoError(t, aggregate.AcceptCharge(time.Now()))
	require.NoError(t, aggregate.Dispatch())
	require.NoError(t, aggregate.MarkDelivered())
	return aggregate
}

func TestSubmitFeedbackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDeliveredOrder(t)
	cmd, _ := commands.NewSubmitFeedbackCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.CustomerID(), 5, "on time")

	orderRepo := new(MockOrderRepository)
	feedbackRepo := new(MockFeedbackRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("FeedbackRepository").Return(feedbackRepo).Once(),
		feedbackRepo.On("GetByOrder", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("feedback", aggregate.ID())).Once(),
		feedbackRepo.On("Add", mock.Anything, mock.AnythingOfType("*feedback.Feedback")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFeedbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitFeedbackCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	feedbackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitFeedbackCommandHandler_Handle_OrderNotDelivered(t *testing.T) {
	ctx := t.Context()
	aggregate := newPairingOrder(t)
	cmd, _ := commands.NewSubmitFeedbackCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.CustomerID(), 4, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFeedbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitFeedbackCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderIsNotDelivered)
}

func TestSubmitFeedbackCommandHandler_Handle_DuplicateFeedback(t *testing.T) {
	ctx := t.Context()
	aggregate := newDeliveredOrder(t)
	cmd, _ := commands.NewSubmitFeedbackCommand(
		kernel.NewUUID(), aggregate.ID(), aggregate.CustomerID(), 4, "")

	existing, err := feedback.NewFeedback(
		kernel.NewUUID(), aggregate.ID(), aggregate.CustomerID(), 3, "late")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	feedbackRepo := new(MockFeedbackRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("FeedbackRepository").Return(feedbackRepo).Once(),
		feedbackRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFeedbackUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitFeedbackCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestNewSubmitFeedbackCommand_RatingOutOfRange(t *testing.T) {
	_, err := commands.NewSubmitFeedbackCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 6, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
