package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutLines(t *testing.T, storeA, storeB kernel.UUID) []services.CartLine {
	t.Helper()

	return []services.CartLine{
		{
			StoreID:     storeA,
			ProductID:   kernel.NewUUID(),
			ProductName: "Polarized Lenses",
			SKU:         "LE-PO-11",
			Quantity:    2,
			UnitPrice:   mustMoney(t, 60.00),
		},
		{
			StoreID:     storeB,
			ProductID:   kernel.NewUUID(),
			ProductName: "Cleaning Kit",
			SKU:         "KT-CL-02",
			Quantity:    1,
			UnitPrice:   mustMoney(t, 80.00),
		},
	}
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(buyerID, checkoutLines(t, storeA, storeB))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	storeOrderRepo := new(MockStoreOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StoreOrderRepository").Return(storeOrderRepo).Once(),
		storeOrderRepo.On("Add", mock.Anything, mock.AnythingOfType("*storeorder.StoreOrder")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	splitter := services.NewCheckoutSplitter(decimal.NewFromFloat(2.5))
	h := commands.NewPlaceOrderCommandHandler(factory, splitter, notifier)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, result.StoreOrders, 2)
	require.True(t, result.Order.GrandTotal().IsEqual(mustMoney(t, 205.00)))

	require.Len(t, notifier.Sent, 2)
	for i, n := range notifier.Sent {
		require.Equal(t, ports.EventStoreOrderPlaced, n.Event)
		require.True(t, n.Recipient.IsEqual(result.StoreOrders[i].StoreID()))
	}

	orderRepo.AssertExpectations(t)
	storeOrderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	splitter := services.NewCheckoutSplitter(decimal.NewFromFloat(2.5))
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderUoWFactory), splitter, new(MockNotifier))

	_, err := h.Handle(ctx, commands.PlaceOrderCommand{})
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(buyerID, checkoutLines(t, kernel.NewUUID(), kernel.NewUUID()))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errBoom).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	splitter := services.NewCheckoutSplitter(decimal.NewFromFloat(2.5))
	h := commands.NewPlaceOrderCommandHandler(factory, splitter, notifier)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errBoom)
	require.Empty(t, notifier.Sent)
	uow.AssertExpectations(t)
}
