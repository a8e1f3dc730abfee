// Package money represents monetary values as integer minor units (cents).
//
// Amounts never pass through floating point: they are parsed and rendered
// with shopspring/decimal and stored as int64 cents, so sums and threshold
// comparisons are exact.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every amount.
const Scale = 2

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountTooLarge = errors.New("amount is too large")
)

var maxCents = decimal.NewFromInt(math.MaxInt64)

// Amount is a count of minor currency units.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// Parse reads a decimal string such as "12.34" or "12". Digits past the
// second decimal place are rounded half-up.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimal converts d to minor units, rounding half away from zero.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	cents := d.Round(Scale).Shift(Scale)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, ErrAmountTooLarge
	}
	return Amount(cents.IntPart()), nil
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

// String renders the amount with exactly two decimals, e.g. "1050.00".
func (a Amount) String() string {
	return a.Decimal().StringFixed(Scale)
}

func (a Amount) IsPositive() bool {
	return a > 0
}

// Add returns a+b, failing instead of wrapping on overflow.
func (a Amount) Add(b Amount) (Amount, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrAmountTooLarge
	}
	return a + b, nil
}

// Sum adds amounts, failing on overflow.
func Sum(amounts ...Amount) (Amount, error) {
	var total Amount
	for _, a := range amounts {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// MarshalJSON encodes the amount as a decimal string ("150.00") so clients
// never see a binary float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	err := d.UnmarshalJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the amount as an integer column.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan reads an integer column written by Value.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	case nil:
		*a = 0
	default:
		return fmt.Errorf("money: cannot scan %T into Amount", src)
	}
	return nil
}

func (a *Amount) scanString(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("money: cannot scan %q into Amount: %w", s, err)
	}
	*a = Amount(v)
	return nil
}
