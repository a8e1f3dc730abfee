package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.ErrorIs(t, ValidateEmail(""), ErrEmailRequired)
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail("Ada <ada@example.com>"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail(strings.Repeat("a", 250)+"@x.io"), ErrEmailTooLong)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("correct horse battery"))
	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("x", 73)), ErrPasswordTooLong)
	assert.ErrorIs(t, ValidatePassword("MyPassword2024!"), ErrPasswordCommon)
}

func TestValidateNames(t *testing.T) {
	assert.NoError(t, ValidateName("Ada Lovelace"))
	assert.EqualError(t, ValidateName("   "), "name is required")
	assert.Error(t, ValidateName(strings.Repeat("é", 101)))

	assert.NoError(t, ValidateGoalName("Vacation"))
	assert.EqualError(t, ValidateGoalName(""), "goal name is required")

	assert.NoError(t, ValidateDescription(""))
	assert.Error(t, ValidateDescription(strings.Repeat("d", 256)))
}

func TestParseFutureDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	d, err := ParseFutureDate("2025-06-16", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseFutureDate("2025-06-15", now)
	assert.ErrorIs(t, err, ErrDateNotInFuture)

	_, err = ParseFutureDate("2024-01-01", now)
	assert.ErrorIs(t, err, ErrDateNotInFuture)

	_, err = ParseFutureDate("16/06/2025", now)
	assert.ErrorIs(t, err, ErrDateInvalid)
}
