package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("data válida vira meia-noite no fuso local", func(t *testing.T) {
		parsed, err := ParseDate("2024-03-10")

		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), *parsed)
	})

	t.Run("string vazia devolve data zero sem erro", func(t *testing.T) {
		parsed, err := ParseDate("")

		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.True(t, parsed.IsZero())
	})

	t.Run("formato inválido retorna erro", func(t *testing.T) {
		parsed, err := ParseDate("10/03/2024")

		assert.Error(t, err)
		assert.Nil(t, parsed)
	})
}
