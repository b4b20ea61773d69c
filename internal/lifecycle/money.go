package lifecycle

import "github.com/shopspring/decimal"

// Денежные суммы хранятся в NUMERIC(14, 2).
const amountScale = 2

var maxAmount = decimal.New(1, 12)

// IsValidAmount - неотрицательная сумма, которая помещается в колонку без округления.
func IsValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() &&
		amount.LessThan(maxAmount) &&
		amount.Equal(amount.Round(amountScale))
}
