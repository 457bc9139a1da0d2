package dto

import "time"

type CreateChargeRequestDTO struct {
	Valor float64 `json:"valor" example:"50"`
}

type PaymentResponseDTO struct {
	ID           string     `json:"id"`
	Valor        float64    `json:"valor"`
	Status       string     `json:"status" example:"pendente"`
	ExternalID   string     `json:"external_id" example:"SIM-1700000000000000000"`
	QRCode       string     `json:"qr_code"`
	QRCodeBase64 string     `json:"qr_code_base64"`
	ExpiraEm     time.Time  `json:"expira_em"`
	PagoEm       *time.Time `json:"pago_em,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type WebhookRequestDTO struct {
	ExternalID string `json:"external_id"`
	Status     string `json:"status" example:"pago"`
}
