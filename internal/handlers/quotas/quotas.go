package quotas

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/quotaservice"
	"bolao/pkg/auth"
	"bolao/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID, poolID uuid.UUID, quantity int) (*domain.PurchaseResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Quota, error)
}

type QuotaHandler struct {
	quotaService Service
}

func New(quotaService Service) *QuotaHandler {
	return &QuotaHandler{
		quotaService: quotaService,
	}
}

// Purchase godoc
//
//	@Summary		Buy quotas of a pool
//	@Description	Purchase runs atomically in the database: pool availability and wallet balance are checked and debited together
//	@Tags			Cotas
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Pool and quantity"
//	@Success		200		{object}	domain.PurchaseResult
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	domain.PurchaseResult	"Purchase denied with verdict"
//	@Router			/api/cotas/comprar [post]
func (h *QuotaHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	poolID, err := uuid.Parse(req.BolaoID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}

	result, err := h.quotaService.Purchase(r.Context(), userID, poolID, req.Quantidade)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, result)
	case errors.Is(err, quotaservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quotaservice.ErrPurchaseDenied):
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, result)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListMine godoc
//
//	@Summary		Quotas bought by the authenticated user
//	@Tags			Cotas
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.QuotaResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/cotas/minhas [get]
func (h *QuotaHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	quotas, err := h.quotaService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.QuotaResponseDTO, 0, len(quotas))
	for _, q := range quotas {
		resp = append(resp, dto.QuotaResponseDTO{
			ID:        q.ID.String(),
			BolaoID:   q.PoolID.String(),
			ValorPago: q.ValorPago,
			CreatedAt: q.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
