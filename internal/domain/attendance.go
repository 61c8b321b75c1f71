package domain

import "time"

// Resultados possíveis de um atendimento
const (
	AttendanceOutcomeSale     = "sale"
	AttendanceOutcomeNoSale   = "no_sale"
	AttendanceOutcomeFollowUp = "follow_up"
)

type Attendance struct {
	ID           int       `json:"id"`
	SellerID     int       `json:"seller_id"`
	CustomerName string    `json:"customer_name"`
	Outcome      string    `json:"outcome"`
	Notes        *string   `json:"notes"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateAttendanceRequest struct {
	SellerID     int     `json:"seller_id"`
	CustomerName string  `json:"customer_name"`
	Outcome      string  `json:"outcome"`
	Notes        *string `json:"notes"`
	Date         string  `json:"date"` // Formato yyyy-mm-dd; vazio = hoje
}
