package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		from, to, err := ParseDateRange("2024-01-01", "2024-01-31")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("Single Day", func(t *testing.T) {
		from, to, err := ParseDateRange("2024-01-15", "2024-01-15")

		require.NoError(t, err)
		assert.Equal(t, from, to)
	})

	t.Run("Exactly Ninety Days", func(t *testing.T) {
		// 2024-01-01 through 2024-03-30 is 90 days counting both ends.
		_, _, err := ParseDateRange("2024-01-01", "2024-03-30")

		assert.NoError(t, err)
	})

	t.Run("Ninety-One Days", func(t *testing.T) {
		_, _, err := ParseDateRange("2024-01-01", "2024-03-31")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "90 days")
	})

	t.Run("Missing Params", func(t *testing.T) {
		_, _, err := ParseDateRange("", "2024-01-31")
		assert.Error(t, err)

		_, _, err = ParseDateRange("2024-01-01", "")
		assert.Error(t, err)
	})

	t.Run("Bad Format", func(t *testing.T) {
		_, _, err := ParseDateRange("01/01/2024", "2024-01-31")
		assert.Error(t, err)
	})

	t.Run("From After To", func(t *testing.T) {
		_, _, err := ParseDateRange("2024-02-01", "2024-01-01")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be after")
	})
}
