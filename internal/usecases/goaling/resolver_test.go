package goaling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-goal-api/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		input          ResolverInput
		expectedTarget float64
		expectedSource string
	}{
		{
			name: "Meta mensal não configurada usa a meta fixa",
			input: ResolverInput{
				MonthlyQuota:       0,
				DefaultDailyTarget: 800,
				ComputationDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				RealizedToDate:     12000,
			},
			expectedTarget: 800,
			expectedSource: domain.GoalSourceFallback,
		},
		{
			name: "Meta mensal não configurada e sem meta fixa retorna zero",
			input: ResolverInput{
				MonthlyQuota:       0,
				DefaultDailyTarget: 0,
				ComputationDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				RealizedToDate:     0,
			},
			expectedTarget: 0,
			expectedSource: domain.GoalSourceFallback,
		},
		{
			name: "Restante dividido pelos dias de venda restantes",
			input: ResolverInput{
				MonthlyQuota:       30000,
				DefaultDailyTarget: 0,
				ComputationDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				RealizedToDate:     10000,
			},
			// 20000 restantes em 18 dias de venda (10 a 31 de março, sem domingos)
			expectedTarget: 20000.0 / 18.0,
			expectedSource: domain.GoalSourceComputed,
		},
		{
			name: "Meta do mês já batida zera a meta diária",
			input: ResolverInput{
				MonthlyQuota:       30000,
				DefaultDailyTarget: 500,
				ComputationDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				RealizedToDate:     30000,
			},
			expectedTarget: 0,
			expectedSource: domain.GoalSourceComputed,
		},
		{
			name: "Realizado acima da meta também zera",
			input: ResolverInput{
				MonthlyQuota:       30000,
				DefaultDailyTarget: 500,
				ComputationDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				RealizedToDate:     42000,
			},
			expectedTarget: 0,
			expectedSource: domain.GoalSourceComputed,
		},
		{
			name: "Último dia do mês caindo no domingo encerra o pacing",
			input: ResolverInput{
				MonthlyQuota:       30000,
				DefaultDailyTarget: 500,
				ComputationDate:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), // Domingo
				RealizedToDate:     10000,
			},
			expectedTarget: 0,
			expectedSource: domain.GoalSourceComputed,
		},
		{
			name: "Último sábado do mês concentra todo o restante",
			input: ResolverInput{
				MonthlyQuota:       30000,
				DefaultDailyTarget: 0,
				ComputationDate:    time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), // Sábado
				RealizedToDate:     29000,
			},
			expectedTarget: 1000,
			expectedSource: domain.GoalSourceComputed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, source := Resolve(tt.input)
			assert.InDelta(t, tt.expectedTarget, target, 1e-9)
			assert.Equal(t, tt.expectedSource, source)
		})
	}
}

func TestResolve_TargetIsNeverNegative(t *testing.T) {
	// Variação do realizado nunca produz meta diária negativa
	for _, realized := range []float64{0, 15000, 30000, 100000} {
		target, _ := Resolve(ResolverInput{
			MonthlyQuota:    30000,
			ComputationDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			RealizedToDate:  realized,
		})
		assert.GreaterOrEqual(t, target, 0.0)
	}
}

func TestResolve_TargetGrowsWhenBehindPace(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	behind, _ := Resolve(ResolverInput{
		MonthlyQuota:    30000,
		ComputationDate: date,
		RealizedToDate:  5000,
	})
	ahead, _ := Resolve(ResolverInput{
		MonthlyQuota:    30000,
		ComputationDate: date,
		RealizedToDate:  25000,
	})

	assert.Greater(t, behind, ahead)
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 20000.0, Remaining(30000, 10000))
	assert.Equal(t, 0.0, Remaining(30000, 30000))

	// Saturado em zero quando o realizado ultrapassa a meta
	assert.Equal(t, 0.0, Remaining(30000, 45000))
}
