package domain

import "time"

type Sale struct {
	ID        string    `json:"id"`
	SellerID  int       `json:"seller_id"`
	Amount    float64   `json:"amount"`
	SaleDate  time.Time `json:"sale_date"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSaleRequest struct {
	SellerID int     `json:"seller_id"`
	Amount   float64 `json:"amount"`
	SaleDate string  `json:"sale_date"` // Formato yyyy-mm-dd; vazio = hoje
}
