package models

import (
	"github.com/shopspring/decimal"

	"ccledger/qianji-csv/internal/ledgererror"
)

var hundred = decimal.NewFromInt(100)

// CentsFromString converts a decimal amount string into integer minor units
// using exact decimal arithmetic. Fractions beyond two places are truncated,
// never rounded through binary floating point.
func CentsFromString(amount string) (int64, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, &ledgererror.ParseError{Field: "amount", Value: amount, Err: err}
	}
	return dec.Mul(hundred).IntPart(), nil
}

// FormatCents renders integer minor units as a two-place decimal string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
