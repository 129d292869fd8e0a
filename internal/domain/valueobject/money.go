package valueobject

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyBRL is the only currency the ERP books in.
const CurrencyBRL = money.BRL

// ToCents converts an amount to integer cents, rounding half away from zero.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatBRL renders an amount the way Brazilian users read it, e.g. "R$1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	return money.New(ToCents(amount), CurrencyBRL).Display()
}

// SplitCents divides total into n parts of whole cents. The last part absorbs
// the rounding remainder so the parts always add up to total.
func SplitCents(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	cents := ToCents(total)
	base := cents / int64(n)
	parts := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		parts[i] = FromCents(base)
	}
	parts[n-1] = FromCents(cents - base*int64(n-1))
	return parts
}
