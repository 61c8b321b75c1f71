package domain

import "time"

// Origem do valor de meta diária retornado pelo motor de pacing
const (
	GoalSourceOverride = "override" // Meta definida manualmente pelo gerente
	GoalSourceComputed = "computed" // Meta calculada a partir da meta mensal
	GoalSourceFallback = "fallback" // Meta diária fixa (meta mensal não configurada)
)

// ComputedGoal é o snapshot derivado retornado a cada consulta; não é persistido.
type ComputedGoal struct {
	SellerID       int       `json:"seller_id"`
	Date           time.Time `json:"date"`
	MonthlyQuota   float64   `json:"monthly_quota"`
	RealizedToDate float64   `json:"realized_to_date"`
	Remaining      float64   `json:"remaining"`
	DailyTarget    float64   `json:"daily_target"`
	Source         string    `json:"source"`
}

type GoalOverride struct {
	ID        int       `json:"id"`
	SellerID  int       `json:"seller_id"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SetOverrideRequest struct {
	Date   string  `json:"date"` // Formato yyyy-mm-dd
	Amount float64 `json:"amount"`
}
