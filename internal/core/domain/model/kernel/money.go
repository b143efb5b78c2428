package kernel

import (
	"errors"
	"fmt"

	"autoservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value did not come from a constructor.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, NewTotal, MoneyFromString or ZeroMoney")

// MoneyScale is the number of fraction digits a stored amount may carry.
const MoneyScale = 2

// MaxMoney is the exclusive upper bound of a stored amount: ten digits before the
// decimal point, matching the numeric(12,2) columns.
var MaxMoney = decimal.New(1, 10)

// Money is a non-negative monetary amount backed by an arbitrary precision decimal.
// Prices and labor costs are Money so that sums never pick up binary floating point error.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a storable amount: non-negative, at most MoneyScale fraction
// digits and below MaxMoney. Trailing zeros such as "1.500" are accepted.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m, err := NewTotal(amount)
	if err != nil {
		return Money{}, err
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s has more than %d fraction digits", amount.String(), MoneyScale),
		)
	}
	if amount.GreaterThanOrEqual(MaxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MaxMoney.String())
	}
	return m, nil
}

// NewTotal creates Money for a computed sum, such as the value of the whole
// inventory. Totals are never stored, so only negative amounts are rejected.
func NewTotal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is less than 0", amount.String()),
		)
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromString parses a decimal literal such as "19.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Mul returns the amount multiplied by a non-negative quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate rejects zero values that bypassed the constructors.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
