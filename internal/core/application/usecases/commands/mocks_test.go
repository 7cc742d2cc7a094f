package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/storeorder"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the command handler tests. All repository ports
// are mocked in full here once instead of per test file; handlers only set
// expectations on the methods they actually call.

type MockStoreOrderRepository struct{ mock.Mock }

func (m *MockStoreOrderRepository) Add(ctx context.Context, so *storeorder.StoreOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockStoreOrderRepository) Update(ctx context.Context, so *storeorder.StoreOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockStoreOrderRepository) Get(ctx context.Context, id kernel.UUID) (*storeorder.StoreOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeorder.StoreOrder), args.Error(1)
}

func (m *MockStoreOrderRepository) GetForStore(
	ctx context.Context,
	id, storeID kernel.UUID,
) (*storeorder.StoreOrder, error) {
	args := m.Called(ctx, id, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeorder.StoreOrder), args.Error(1)
}

func (m *MockStoreOrderRepository) GetForBuyer(
	ctx context.Context,
	id, buyerID kernel.UUID,
) (*storeorder.StoreOrder, error) {
	args := m.Called(ctx, id, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storeorder.StoreOrder), args.Error(1)
}

func (m *MockStoreOrderRepository) DeliveryCodeInUse(
	ctx context.Context,
	code storeorder.DeliveryCode,
) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreOrderRepository) GetPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*storeorder.StoreOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storeorder.StoreOrder), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Debit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, buyerID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) Credit(ctx context.Context, buyerID kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, buyerID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) Balance(ctx context.Context, buyerID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) StoreOrderRepository() ports.StoreOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentUoW struct{ mock.Mock }

func (m *MockPaymentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPaymentUoW) StoreOrderRepository() ports.StoreOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreOrderRepository)
}

func (m *MockPaymentUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockWalletUoW struct{ mock.Mock }

func (m *MockWalletUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWalletUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWalletUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWalletUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

type MockWalletUoWFactory struct{ mock.Mock }

func (m *MockWalletUoWFactory) Create() commands.WalletUoW {
	args := m.Called()
	return args.Get(0).(commands.WalletUoW)
}

type MockStoreOrderUoW struct{ mock.Mock }

func (m *MockStoreOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreOrderUoW) StoreOrderRepository() ports.StoreOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreOrderRepository)
}

type MockStoreOrderUoWFactory struct{ mock.Mock }

func (m *MockStoreOrderUoWFactory) Create() commands.StoreOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreOrderUoW)
}

// MockNotifier records notifications instead of delivering them.
type MockNotifier struct {
	Sent []ports.Notification
}

func (m *MockNotifier) Notify(_ context.Context, n ports.Notification) {
	m.Sent = append(m.Sent, n)
}

type MockReminderTracker struct{ mock.Mock }

func (m *MockReminderTracker) AlreadyReminded(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReminderTracker) MarkReminded(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Aggregate fixtures.

func newPendingStoreOrder(t *testing.T, orderID, storeID kernel.UUID) *storeorder.StoreOrder {
	t.Helper()

	price, err := kernel.MoneyFromFloat(50.00)
	require.NoError(t, err)

	item, err := storeorder.NewOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), "Titanium Frame", "FR-TI-01", 2, price,
	)
	require.NoError(t, err)

	so, err := storeorder.NewStoreOrder(
		kernel.NewUUID(), orderID, storeID,
		[]storeorder.OrderItem{item},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return so
}

func newAcceptedStoreOrder(t *testing.T, orderID, storeID kernel.UUID, fee kernel.Money) *storeorder.StoreOrder {
	t.Helper()

	so := newPendingStoreOrder(t, orderID, storeID)
	require.NoError(t, so.Accept(fee, nil, "courier", ""))
	return so
}

func newTestOrder(t *testing.T, id, buyerID kernel.UUID, itemsTotal kernel.Money) *order.Order {
	t.Helper()

	number, err := order.GenerateOrderNumber()
	require.NoError(t, err)

	fee, err := kernel.MoneyFromFloat(2.50)
	require.NoError(t, err)

	o, err := order.NewOrder(id, buyerID, number, itemsTotal, fee, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()

	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

var errBoom = errors.New("boom")
