package dto

import "time"

type WalletResponseDTO struct {
	SaldoDisponivel float64 `json:"saldo_disponivel" example:"150.75"`
	SaldoBloqueado  float64 `json:"saldo_bloqueado" example:"0"`
}

type TransactionResponseDTO struct {
	ID             string    `json:"id"`
	Tipo           string    `json:"tipo" example:"credito"`
	Valor          float64   `json:"valor" example:"50"`
	Origem         string    `json:"origem" example:"pix"`
	Descricao      string    `json:"descricao,omitempty"`
	SaldoAnterior  float64   `json:"saldo_anterior"`
	SaldoPosterior float64   `json:"saldo_posterior"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
