package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/paymentservice"
	"bolao/pkg/auth"
	"bolao/pkg/utils"
)

type Service interface {
	CreateCharge(ctx context.Context, userID uuid.UUID, valor float64) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, externalID string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func toPaymentDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:           p.ID.String(),
		Valor:        p.Valor,
		Status:       p.Status,
		ExternalID:   p.ExternalID,
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
		ExpiraEm:     p.ExpiraEm,
		PagoEm:       p.PagoEm,
		CreatedAt:    p.CreatedAt,
	}
}

// CreateCharge godoc
//
//	@Summary		Create a Pix deposit charge
//	@Description	Returns the copy-paste payload and QR code; the deposit credits the wallet once the webhook confirms payment
//	@Tags			Pagamentos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateChargeRequestDTO	true	"Deposit amount"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/pagamentos/criar-pix [post]
func (h *PaymentHandler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.paymentService.CreateCharge(r.Context(), userID, req.Valor)
	if errors.Is(err, paymentservice.ErrInvalidAmount) {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// Webhook godoc
//
//	@Summary		Payment gateway callback
//	@Description	Settles a pending charge. Replays are acknowledged without crediting twice
//	@Tags			Pagamentos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookRequestDTO	true	"Gateway notification"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		410		{object}	utils.Response	"Payment expired"
//	@Router			/api/pagamentos/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ExternalID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != domain.PaymentPaid {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ignored"})
		return
	}

	payment, err := h.paymentService.ConfirmPayment(r.Context(), req.ExternalID)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
	case errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
	case errors.Is(err, paymentservice.ErrPaymentExpired):
		utils.RespondWithError(w, http.StatusGone, "Payment expired")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListMine godoc
//
//	@Summary		Pix charges of the authenticated user
//	@Tags			Pagamentos
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/pagamentos/meus [get]
func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	payments, err := h.paymentService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
