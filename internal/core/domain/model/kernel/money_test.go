package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_ValidAmount(t *testing.T) {
	m, err := kernel.NewMoney(decimal.NewFromFloat(100.00))

	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, "100.00", m.String())
}

func TestNewMoney_RoundsToTwoDecimals(t *testing.T) {
	m, err := kernel.NewMoney(decimal.NewFromFloat(10.005))

	require.NoError(t, err)
	assert.Equal(t, "10.01", m.String())
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := kernel.NewMoney(decimal.NewFromFloat(-1.00))

	require.Error(t, err)
}

func TestMoneyFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.34")
		require.NoError(t, err)
		assert.Equal(t, "12.34", m.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.MoneyFromString("not-a-number")
		require.Error(t, err)
	})
}

func TestMoney_Validate_ZeroValue(t *testing.T) {
	var m kernel.Money

	require.Error(t, m.Validate())
	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
}

func TestMoney_Add(t *testing.T) {
	subtotal, _ := kernel.MoneyFromFloat(100.00)
	fee, _ := kernel.MoneyFromFloat(10.00)

	total := subtotal.Add(fee)

	assert.Equal(t, "110.00", total.String())
	require.NoError(t, total.Validate())
}

func TestMoney_Sub(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		total, _ := kernel.MoneyFromFloat(110.00)
		part, _ := kernel.MoneyFromFloat(10.00)

		rest, err := total.Sub(part)

		require.NoError(t, err)
		assert.Equal(t, "100.00", rest.String())
	})

	t.Run("negative result", func(t *testing.T) {
		total, _ := kernel.MoneyFromFloat(10.00)
		part, _ := kernel.MoneyFromFloat(110.00)

		_, err := total.Sub(part)

		require.Error(t, err)
	})
}

func TestMoney_MulInt(t *testing.T) {
	unitPrice, _ := kernel.MoneyFromFloat(25.50)

	lineTotal := unitPrice.MulInt(3)

	assert.Equal(t, "76.50", lineTotal.String())
}

func TestMoney_Percent(t *testing.T) {
	itemsTotal, _ := kernel.MoneyFromFloat(200.00)

	fee := itemsTotal.Percent(decimal.NewFromFloat(2.5))

	assert.Equal(t, "5.00", fee.String())
}

func TestMoney_Comparisons(t *testing.T) {
	a, _ := kernel.MoneyFromFloat(5.00)
	b, _ := kernel.MoneyFromFloat(10.00)

	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, a.IsEqual(a))
	assert.True(t, kernel.ZeroMoney().IsZero())
}
