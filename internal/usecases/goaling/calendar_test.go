package goaling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountSellingDays(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "Intervalo de um único dia útil conta 1",
			from:     time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), // Segunda
			to:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Intervalo de um único domingo conta 0",
			from:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), // Domingo
			to:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Do dia 10 ao fim de março de 2024 restam 18 dias de venda",
			from:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: 18,
		},
		{
			name:     "Março de 2024 completo tem 26 dias de venda",
			from:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: 26,
		},
		{
			name:     "Intervalo invertido conta 0",
			from:     time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Horário do dia é ignorado na contagem",
			from:     time.Date(2024, 3, 11, 23, 59, 59, 0, time.UTC),
			to:       time.Date(2024, 3, 12, 0, 0, 1, 0, time.UTC),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSellingDays(tt.from, tt.to))
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "Mês de 31 dias",
			date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro em ano bissexto",
			date:     time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro em ano comum",
			date:     time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Dezembro não transborda para o ano seguinte",
			date:     time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LastDayOfMonth(tt.date))
		})
	}
}

func TestFirstDayOfMonth(t *testing.T) {
	date := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(date))
}
