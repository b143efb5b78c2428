package kernel_test

import (
	"testing"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "0.01", "1500.50"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(amount))
			require.NoError(t, err, amount)
			require.NoError(t, m.Validate())
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-0.01 is less than 0")
	})

	t.Run("rejects sub-cent amounts", func(t *testing.T) {
		for _, amount := range []string{"0.001", "0.005", "19.999"} {
			_, err := kernel.NewMoney(decimal.RequireFromString(amount))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, amount)
			assert.Contains(t, err.Error(), "more than 2 fraction digits")
		}
	})

	t.Run("accepts trailing zeros beyond cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("1.500"))

		require.NoError(t, err)
		assert.Equal(t, "1.50", m.String())
	})

	t.Run("rejects amounts that do not fit ten integer digits", func(t *testing.T) {
		largest, err := kernel.NewMoney(decimal.RequireFromString("9999999999.99"))
		require.NoError(t, err)
		assert.Equal(t, "9999999999.99", largest.String())

		for _, amount := range []string{"10000000000", "123456789012.5"} {
			_, err = kernel.NewMoney(decimal.RequireFromString(amount))
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, amount)
		}
	})
}

func TestNewTotal(t *testing.T) {
	total, err := kernel.NewTotal(decimal.RequireFromString("250000000000.00"))
	require.NoError(t, err)
	require.NoError(t, total.Validate())
	assert.Equal(t, "250000000000.00", total.String())

	_, err = kernel.NewTotal(decimal.RequireFromString("-1"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("19.9")
	require.NoError(t, err)
	assert.Equal(t, "19.90", m.String())

	_, err = kernel.MoneyFromString("abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.MoneyFromString("0.001")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	twenty, _ := kernel.MoneyFromString("20")
	thirty, _ := kernel.MoneyFromString("30")
	fifty, _ := kernel.MoneyFromString("50.00")

	assert.True(t, twenty.Add(thirty).IsEqual(fifty))
	assert.Equal(t, "60.00", twenty.Mul(3).String())
	assert.True(t, kernel.ZeroMoney().Add(twenty).IsEqual(twenty))
	assert.False(t, kernel.ZeroMoney().IsPositive())
	assert.True(t, twenty.IsPositive())
}

func TestMoney_AvoidsFloatingPointDrift(t *testing.T) {
	tenth, _ := kernel.MoneyFromString("0.1")
	fifth, _ := kernel.MoneyFromString("0.2")
	expected, _ := kernel.MoneyFromString("0.3")

	assert.True(t, tenth.Add(fifth).IsEqual(expected))
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	require.ErrorIs(t, zero.Validate(), kernel.ErrMoneyIsNotConstructed)
	require.NoError(t, kernel.ZeroMoney().Validate())
}
