package goaling

import (
	"time"

	"github.com/vfg2006/sales-goal-api/internal/domain"
)

// ResolverInput reúne os valores já carregados dos repositórios; o cálculo
// em si é puro e não toca o banco.
type ResolverInput struct {
	MonthlyQuota       float64
	DefaultDailyTarget float64
	ComputationDate    time.Time
	RealizedToDate     float64
}

// Resolve converte a meta mensal em uma meta diária adaptativa: o que falta
// vender é dividido igualmente pelos dias de venda restantes do mês,
// incluindo o próprio dia do cálculo. Quem está atrás do ritmo vê a meta
// diária subir; quem está na frente vê cair até zero.
func Resolve(in ResolverInput) (float64, string) {
	// Meta mensal não configurada: pacing desligado, vale a meta fixa
	if in.MonthlyQuota == 0 {
		return in.DefaultDailyTarget, domain.GoalSourceFallback
	}

	remaining := in.MonthlyQuota - in.RealizedToDate
	if remaining <= 0 {
		// Meta do mês já batida
		return 0, domain.GoalSourceComputed
	}

	sellingDaysRemaining := CountSellingDays(in.ComputationDate, LastDayOfMonth(in.ComputationDate))
	if sellingDaysRemaining <= 0 {
		// Sem dias de venda restantes (mês encerrado ou só resta domingo):
		// nunca inventamos um valor por dia indefinido, o pacing é encerrado
		return 0, domain.GoalSourceComputed
	}

	// Quociente exato; arredondamento é responsabilidade da apresentação
	return remaining / float64(sellingDaysRemaining), domain.GoalSourceComputed
}

// Remaining calcula o restante da meta mensal, saturado em zero.
func Remaining(monthlyQuota, realizedToDate float64) float64 {
	remaining := monthlyQuota - realizedToDate
	if remaining < 0 {
		return 0
	}
	return remaining
}
