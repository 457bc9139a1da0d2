package wallet

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/walletservice"
	"bolao/pkg/auth"
	"bolao/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, tipo string, limit int) ([]domain.Transaction, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*walletservice.Summary, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	return uuid.Parse(raw)
}

// GetWallet godoc
//
//	@Summary		Get the authenticated user's wallet
//	@Tags			Carteira
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Router			/api/carteira [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if errors.Is(err, walletservice.ErrWalletNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		SaldoDisponivel: wallet.SaldoDisponivel,
		SaldoBloqueado:  wallet.SaldoBloqueado,
	})
}

// GetTransactions godoc
//
//	@Summary		Ledger of the authenticated user
//	@Description	Most recent entries first; filter by tipo and cap with limite
//	@Tags			Carteira
//	@Security		BearerAuth
//	@Produce		json
//	@Param			tipo	query		string	false	"Entry type filter"	Enums(credito, debito)
//	@Param			limite	query		int		false	"Max entries (default 50)"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/carteira/transacoes [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	tipo := r.URL.Query().Get("tipo")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limite"))

	txs, err := h.walletService.GetTransactions(r.Context(), userID, tipo, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.TransactionResponseDTO, 0, len(txs))
	for _, t := range txs {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:             t.ID.String(),
			Tipo:           t.Tipo,
			Valor:          t.Valor,
			Origem:         t.Origem,
			Descricao:      t.Descricao,
			SaldoAnterior:  t.SaldoAnterior,
			SaldoPosterior: t.SaldoPosterior,
			Status:         t.Status,
			CreatedAt:      t.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetSummary godoc
//
//	@Summary		Balance plus lifetime totals per origin
//	@Tags			Carteira
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	walletservice.Summary
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Router			/api/carteira/resumo [get]
func (h *WalletHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	summary, err := h.walletService.GetSummary(r.Context(), userID)
	if errors.Is(err, walletservice.ErrWalletNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
