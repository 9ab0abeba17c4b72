package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a value as Brazilian real, pt-BR style:
// "R$ 1.234,56". Negative values get a leading minus.
func FormatCurrency(value decimal.Decimal) string {
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := "R$ " + b.String() + "," + fracPart
	if negative {
		return "-" + out
	}
	return out
}

// MaskCardNumber strips everything that is not a digit and re-inserts
// a space every 4 digits. Masking already-masked input is a no-op.
func MaskCardNumber(raw string) string {
	digits := stripNonDigits(raw)

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// MaskExpiryDate formats card expiry input as MM/YY, truncating to
// 4 digits.
func MaskExpiryDate(raw string) string {
	digits := stripNonDigits(raw)
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
