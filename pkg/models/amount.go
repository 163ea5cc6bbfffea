package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places every amount is rounded to.
const AmountPlaces = 2

// Amount is a monetary value with two decimal places.
//
// It is transmitted as an unquoted JSON number, e.g. 300.00. Decoding accepts
// numbers as well as quoted decimal strings.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns the Amount for d, rounded to two decimal places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d.Round(AmountPlaces)}
}

// ParseAmount parses a decimal string like "45.50" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrAmountUnparseable, s)
	}

	return NewAmount(d), nil
}

// MustAmount is like ParseAmount but panics on unparseable input.
// It is intended for constants and tests.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return NewAmount(a.Decimal.Add(b.Decimal))
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return NewAmount(a.Decimal.Sub(b.Decimal))
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{a.Decimal.Neg()}
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	return Amount{a.Decimal.Abs()}
}

// Equal reports whether a and b represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// String formats the amount with exactly two decimal places.
func (a Amount) String() string {
	return a.Decimal.StringFixed(AmountPlaces)
}

// MarshalJSON encodes the amount as a JSON number with two decimal places.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON decodes JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %s", ErrAmountUnparseable, data)
	}

	*a = NewAmount(d)
	return nil
}
