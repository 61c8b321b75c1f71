// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Seller struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Lastname           string    `json:"lastname"`
	Store              string    `json:"store"`
	MonthlyQuota       float64   `json:"monthly_quota"`        // 0 = meta mensal não configurada
	DefaultDailyTarget float64   `json:"default_daily_target"` // Meta diária fixa usada quando não há meta mensal
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type UpdateSellerRequest struct {
	ID                 int      `json:"id"`
	Name               *string  `json:"name"`
	Lastname           *string  `json:"lastname"`
	Store              *string  `json:"store"`
	MonthlyQuota       *float64 `json:"monthly_quota"`
	DefaultDailyTarget *float64 `json:"default_daily_target"`
	Active             *bool    `json:"active"`
}
