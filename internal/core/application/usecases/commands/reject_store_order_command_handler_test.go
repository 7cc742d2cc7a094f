package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectStoreOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	storeID := kernel.NewUUID()
	buyerID := kernel.NewUUID()

	so := newPendingStoreOrder(t, orderID, storeID)
	parent := newTestOrder(t, orderID, buyerID, so.Subtotal())
	grandBefore := parent.GrandTotal()

	cmd, err := commands.NewRejectStoreOrderCommand(so.ID(), storeID, "out of stock")
	require.NoError(t, err)

	storeOrderRepo := new(MockStoreOrderRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("GetForStore", mock.Anything, so.ID(), storeID).Return(so, nil).Once(),
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

	h := commands.NewRejectStoreOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, storeorder.Rejected, so.Status())
	require.Equal(t, "out of stock", so.RejectionReason())

	// The parent order dropped the rejected store order's subtotal.
	expected, err := grandBefore.Sub(so.Subtotal())
	require.NoError(t, err)
	require.True(t, parent.GrandTotal().IsEqual(expected))

	require.Len(t, notifier.Sent, 1)
	require.Equal(t, ports.EventStoreOrderRejected, notifier.Sent[0].Event)
	require.True(t, notifier.Sent[0].Recipient.IsEqual(buyerID))
	require.Equal(t, "out of stock", notifier.Sent[0].Payload["reason"])
}

func TestRejectStoreOrderCommandHandler_Handle_EmptyReasonRejectedAtConstruction(t *testing.T) {
	_, err := commands.NewRejectStoreOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}

func TestRejectStoreOrderCommandHandler_Handle_PaidOrderCannotBeRejected(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()

	so := newAcceptedStoreOrder(t, kernel.NewUUID(), storeID, mustMoney(t, 10.00))
	code, err := storeorder.DeliveryCodeFromString("555123")
	require.NoError(t, err)
	require.NoError(t, so.MarkPaid(code))

	cmd, err := commands.NewRejectStoreOrderCommand(so.ID(), storeID, "changed my mind")
	require.NoError(t, err)

	storeOrderRepo := new(MockStoreOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("GetForStore", mock.Anything, so.ID(), storeID).Return(so, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectStoreOrderCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeorder.ErrInvalidTransition)
	require.Equal(t, storeorder.Paid, so.Status())
}
