package goaling

import "time"

// CountSellingDays conta os dias úteis de venda no intervalo fechado
// [from, to]. A loja abre de segunda a sábado; apenas domingos ficam de
// fora. Retorna 0 quando from > to. Apenas o componente de data é
// considerado, nunca o horário.
func CountSellingDays(from, to time.Time) int {
	from = truncateToDate(from)
	to = truncateToDate(to)

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}

	return count
}

// LastDayOfMonth retorna o último dia do mês da data informada.
func LastDayOfMonth(date time.Time) time.Time {
	firstOfNextMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)
	return firstOfNextMonth.AddDate(0, 0, -1)
}

// FirstDayOfMonth retorna o primeiro dia do mês da data informada.
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
