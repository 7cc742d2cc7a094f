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

func newOutForDeliveryStoreOrder(
	t *testing.T,
	orderID, storeID kernel.UUID,
	code string,
) *storeorder.StoreOrder {
	t.Helper()

	so := newAcceptedStoreOrder(t, orderID, storeID, mustMoney(t, 10.00))
	deliveryCode, err := storeorder.DeliveryCodeFromString(code)
	require.NoError(t, err)
	require.NoError(t, so.MarkPaid(deliveryCode))
	require.NoError(t, so.StartDelivery())
	return so
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	storeID := kernel.NewUUID()
	buyerID := kernel.NewUUID()

	so := newOutForDeliveryStoreOrder(t, orderID, storeID, "042137")
	parent := newTestOrder(t, orderID, buyerID, so.Subtotal())

	cmd, err := commands.NewMarkDeliveredCommand(so.ID(), storeID, "042137")
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
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	h := commands.NewMarkDeliveredCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, storeorder.Delivered, so.Status())
	require.NotNil(t, so.DeliveredAt())

	require.Len(t, notifier.Sent, 1)
	require.Equal(t, ports.EventStoreOrderDelivered, notifier.Sent[0].Event)
	require.True(t, notifier.Sent[0].Recipient.IsEqual(buyerID))

	storeOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	so := newOutForDeliveryStoreOrder(t, kernel.NewUUID(), storeID, "042137")

	cmd, err := commands.NewMarkDeliveredCommand(so.ID(), storeID, "000000")
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
	notifier := new(MockNotifier)

	h := commands.NewMarkDeliveredCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeorder.ErrInvalidDeliveryCode)

	// Still out for delivery, ready for a correct retry.
	require.Equal(t, storeorder.OutForDelivery, so.Status())
	require.Nil(t, so.DeliveredAt())
	require.Empty(t, notifier.Sent)
}

func TestMarkDeliveredCommandHandler_Handle_PaidButNotDispatched(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()

	so := newAcceptedStoreOrder(t, kernel.NewUUID(), storeID, mustMoney(t, 10.00))
	code, err := storeorder.DeliveryCodeFromString("042137")
	require.NoError(t, err)
	require.NoError(t, so.MarkPaid(code))

	cmd, err := commands.NewMarkDeliveredCommand(so.ID(), storeID, "042137")
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

	h := commands.NewMarkDeliveredCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, storeorder.ErrInvalidTransition)
}
