package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out Amount
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true},
		{"1.004", 100, true},
		{"-5", -500, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if !tc.ok {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.out, got, "input %q", tc.in)
	}
}

func TestParse_Overflow(t *testing.T) {
	_, err := Parse("999999999999999999999")
	assert.ErrorIs(t, err, ErrAmountTooLarge)
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "1050.00", Amount(105000).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "0.00", Zero.String())
}

func TestAmount_Add(t *testing.T) {
	sum, err := Amount(80000).Add(Amount(15000))
	require.NoError(t, err)
	assert.Equal(t, Amount(95000), sum)

	_, err = Amount(math.MaxInt64).Add(Amount(1))
	assert.ErrorIs(t, err, ErrAmountTooLarge)
}

func TestSum(t *testing.T) {
	total, err := Sum(Amount(3000), Amount(7000))
	require.NoError(t, err)
	assert.Equal(t, Amount(10000), total)

	total, err = Sum()
	require.NoError(t, err)
	assert.Equal(t, Zero, total)
}

func TestAmount_JSON(t *testing.T) {
	var payload struct {
		Amount Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 150}`), &payload))
	assert.Equal(t, Amount(15000), payload.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "12.5"}`), &payload))
	assert.Equal(t, Amount(1250), payload.Amount)

	assert.Error(t, json.Unmarshal([]byte(`{"amount": "twelve"}`), &payload))

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.50"}`, string(out))
}
