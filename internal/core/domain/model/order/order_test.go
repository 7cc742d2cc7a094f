package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func makeOrder(t *testing.T, itemsTotal, platformFee float64) *order.Order {
	t.Helper()
	number, err := order.GenerateOrderNumber()
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		number,
		money(t, itemsTotal),
		money(t, platformFee),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestGenerateOrderNumber(t *testing.T) {
	number, err := order.GenerateOrderNumber()

	require.NoError(t, err)
	require.NoError(t, number.Validate())
	assert.Regexp(t, `^ORD-\d{10}$`, number.String())
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		n, err := order.OrderNumberFromString("ORD-4829130057")
		require.NoError(t, err)
		assert.Equal(t, "ORD-4829130057", n.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "4829130057", "ORD-123", "ORD-48291300571"} {
			_, err := order.OrderNumberFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestNewOrder_InitialTotals(t *testing.T) {
	o := makeOrder(t, 200.00, 5.00)

	assert.Equal(t, "200.00", o.ItemsTotal().String())
	assert.True(t, o.ShippingTotal().IsZero())
	assert.Equal(t, "5.00", o.PlatformFee().String())
	assert.Equal(t, "205.00", o.GrandTotal().String())
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order

	require.Error(t, o.Validate())
	require.Error(t, (*order.Order)(nil).Validate())
}

func TestOrder_AddDeliveryFee(t *testing.T) {
	o := makeOrder(t, 200.00, 5.00)

	require.NoError(t, o.AddDeliveryFee(money(t, 10.00)))

	assert.Equal(t, "10.00", o.ShippingTotal().String())
	assert.Equal(t, "215.00", o.GrandTotal().String())

	// A second store accepting adds on top.
	require.NoError(t, o.AddDeliveryFee(money(t, 7.50)))
	assert.Equal(t, "17.50", o.ShippingTotal().String())
	assert.Equal(t, "222.50", o.GrandTotal().String())
}

func TestOrder_RemoveStoreOrderContribution(t *testing.T) {
	t.Run("pending store order contributes no fee", func(t *testing.T) {
		o := makeOrder(t, 200.00, 5.00)

		// A pending store order with a 80.00 subtotal is rejected.
		require.NoError(t, o.RemoveStoreOrderContribution(money(t, 80.00), kernel.ZeroMoney()))

		assert.Equal(t, "120.00", o.ItemsTotal().String())
		assert.Equal(t, "125.00", o.GrandTotal().String())
	})

	t.Run("grand total invariant holds after removal", func(t *testing.T) {
		o := makeOrder(t, 200.00, 5.00)
		require.NoError(t, o.AddDeliveryFee(money(t, 10.00)))

		require.NoError(t, o.RemoveStoreOrderContribution(money(t, 80.00), kernel.ZeroMoney()))

		expected := o.ItemsTotal().Add(o.ShippingTotal()).Add(o.PlatformFee())
		assert.True(t, o.GrandTotal().IsEqual(expected))
	})

	t.Run("removing more than present fails", func(t *testing.T) {
		o := makeOrder(t, 200.00, 5.00)

		err := o.RemoveStoreOrderContribution(money(t, 300.00), kernel.ZeroMoney())

		require.Error(t, err)
		assert.Equal(t, "200.00", o.ItemsTotal().String())
	})
}

func TestRestoreOrder_ChecksGrandTotalInvariant(t *testing.T) {
	number, err := order.GenerateOrderNumber()
	require.NoError(t, err)

	t.Run("consistent totals restore", func(t *testing.T) {
		o, restoreErr := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), number,
			money(t, 200.00), money(t, 10.00), money(t, 5.00), money(t, 215.00),
			time.Now(),
		)

		require.NoError(t, restoreErr)
		assert.Equal(t, "215.00", o.GrandTotal().String())
	})

	t.Run("inconsistent totals fail", func(t *testing.T) {
		_, restoreErr := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), number,
			money(t, 200.00), money(t, 10.00), money(t, 5.00), money(t, 220.00),
			time.Now(),
		)

		require.Error(t, restoreErr)
	})
}
