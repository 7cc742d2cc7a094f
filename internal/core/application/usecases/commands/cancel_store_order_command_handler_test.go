package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelStoreOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	storeID := kernel.NewUUID()
	buyerID := kernel.NewUUID()

	so := newPendingStoreOrder(t, orderID, storeID)
	parent := newTestOrder(t, orderID, buyerID, so.Subtotal())

	cmd, err := commands.NewCancelStoreOrderCommand(so.ID(), buyerID, "found it cheaper")
	require.NoError(t, err)

	storeOrderRepo := new(MockStoreOrderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("GetForBuyer", mock.Anything, so.ID(), buyerID).Return(so, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(parent, nil).Once(),
		storeOrderRepo.On("Update", mock.Anything, so).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, parent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewCancelStoreOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, storeorder.Cancelled, so.Status())

	// The cancellation notice goes to the store, not back to the buyer.
	require.Len(t, notifier.Sent, 1)
	require.Equal(t, ports.EventStoreOrderCancelled, notifier.Sent[0].Event)
	require.True(t, notifier.Sent[0].Recipient.IsEqual(storeID))
}

func TestCancelStoreOrderCommandHandler_Handle_EmptyReasonAllowed(t *testing.T) {
	_, err := commands.NewCancelStoreOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)
}

func TestCancelStoreOrderCommandHandler_Handle_ForeignBuyerSeesNotFound(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	storeOrderID := kernel.NewUUID()

	cmd, err := commands.NewCancelStoreOrderCommand(storeOrderID, buyerID, "")
	require.NoError(t, err)

	storeOrderRepo := new(MockStoreOrderRepository)
	uow := new(MockOrderUoW)
	notFound := errs.NewObjectNotFoundError("store order", storeOrderID)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("GetForBuyer", mock.Anything, storeOrderID, buyerID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStoreOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelStoreOrderCommandHandler_Handle_AcceptedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	so := newAcceptedStoreOrder(t, kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, 10.00))

	cmd, err := commands.NewCancelStoreOrderCommand(so.ID(), buyerID, "")
	require.NoError(t, err)

	storeOrderRepo := new(MockStoreOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("GetForBuyer", mock.Anything, so.ID(), buyerID).Return(so, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStoreOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeorder.ErrInvalidTransition)
	require.Equal(t, storeorder.Accepted, so.Status())
}
