package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-12")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), m.End())
	assert.Equal(t, "2025-12", m.String())

	_, err = ParseMonth("2025-13")
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = ParseMonth("December")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMonthOf(t *testing.T) {
	at := time.Date(2025, time.March, 31, 23, 30, 0, 0, time.FixedZone("x", -2*3600))
	assert.Equal(t, "2025-04", MonthOf(at).String())
}
