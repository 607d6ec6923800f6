package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	t.Run("Datas explícitas devem ser parseadas", func(t *testing.T) {
		from, to, err := ParseDateRange("2025-01-01", "2025-09-30")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("From vazio assume o primeiro dia do mês de to", func(t *testing.T) {
		from, to, err := ParseDateRange("", "2025-06-15")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("To vazio assume o dia atual", func(t *testing.T) {
		_, to, err := ParseDateRange("2025-01-01", "")

		assert.NoError(t, err)
		assert.False(t, to.IsZero())
	})

	t.Run("Formato inválido devolve erro", func(t *testing.T) {
		_, _, err := ParseDateRange("01/01/2025", "2025-09-30")
		assert.Error(t, err)

		_, _, err = ParseDateRange("2025-01-01", "30-09-2025")
		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Data válida", func(t *testing.T) {
		date, err := ParseDate("2025-03-10")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("Vazio devolve zero value", func(t *testing.T) {
		date, err := ParseDate("")

		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido devolve erro", func(t *testing.T) {
		_, err := ParseDate("10/03/2025")
		assert.Error(t, err)
	})
}
