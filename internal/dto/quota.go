package dto

import "time"

type PurchaseRequestDTO struct {
	BolaoID    string `json:"bolao_id"`
	Quantidade int    `json:"quantidade" example:"2"`
}

type QuotaResponseDTO struct {
	ID        string    `json:"id"`
	BolaoID   string    `json:"bolao_id"`
	ValorPago float64   `json:"valor_pago"`
	CreatedAt time.Time `json:"created_at"`
}
