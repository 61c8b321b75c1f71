package domain

import "time"

// DailySalesSummary é o agregado diário por vendedor mantido pelo cron de
// sincronização. Alimenta apenas o relatório gerencial; o motor de pacing
// sempre recalcula a partir das vendas brutas.
type DailySalesSummary struct {
	ID              int       `json:"id"`
	SellerID        int       `json:"seller_id"`
	Date            time.Time `json:"date"`
	TotalAmount     float64   `json:"total_amount"`
	SalesQuantity   int       `json:"sales_quantity"`
	AttendanceCount int       `json:"attendance_count"`
	AverageTicket   float64   `json:"average_ticket"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DailySummaryReport struct {
	Date       time.Time            `json:"date"`
	Summaries  []*DailySalesSummary `json:"summaries"`
	LastUpdate time.Time            `json:"last_update"`
}
