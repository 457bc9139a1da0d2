package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/handlers/pools"
	"bolao/internal/service/apurationservice"
	"bolao/internal/service/poolservice"
	"bolao/pkg/utils"
)

type PoolService interface {
	CreatePool(ctx context.Context, pool *domain.Pool) (*domain.Pool, error)
	UpdatePool(ctx context.Context, pool *domain.Pool) (*domain.Pool, error)
	ClosePool(ctx context.Context, id uuid.UUID) error
	CancelPool(ctx context.Context, id uuid.UUID) error
	DeletePool(ctx context.Context, id uuid.UUID) error
	AddTickets(ctx context.Context, poolID uuid.UUID, dezenas [][]int32) ([]domain.Ticket, error)
	RemoveTicket(ctx context.Context, poolID, ticketID uuid.UUID) error
	Stats(ctx context.Context) (map[string]int, error)
}

type Apurator interface {
	ApurateContest(ctx context.Context, poolID uuid.UUID, concurso int, dezenas []int32, premiacoes map[int]float64) (*apurationservice.ContestReport, error)
	ApuratePending(ctx context.Context, poolID uuid.UUID) (*apurationservice.PendingReport, error)
	ApurateActivePools(ctx context.Context) error
}

type QuotaService interface {
	Totals(ctx context.Context) (int, float64, error)
}

type WalletService interface {
	TotalBalance(ctx context.Context) (float64, error)
}

type PaymentService interface {
	CountPending(ctx context.Context) (int, error)
}

type AdminHandler struct {
	poolService    PoolService
	apurator       Apurator
	quotaService   QuotaService
	walletService  WalletService
	paymentService PaymentService
}

func New(poolService PoolService, apurator Apurator, quotaService QuotaService, walletService WalletService, paymentService PaymentService) *AdminHandler {
	return &AdminHandler{
		poolService:    poolService,
		apurator:       apurator,
		quotaService:   quotaService,
		walletService:  walletService,
		paymentService: paymentService,
	}
}

func poolIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func respondPoolServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poolservice.ErrPoolNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
	case errors.Is(err, poolservice.ErrInvalidContest),
		errors.Is(err, poolservice.ErrInvalidQuotas),
		errors.Is(err, poolservice.ErrInvalidDezenas),
		errors.Is(err, poolservice.ErrTicketNotFound):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, poolservice.ErrDuplicateContest),
		errors.Is(err, poolservice.ErrPoolNotEditable),
		errors.Is(err, poolservice.ErrPoolHasQuotas):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreatePool godoc
//
//	@Summary		Create a pool
//	@Description	Open a new pool for a single contest or a teimosinha series
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePoolRequestDTO	true	"Pool definition"
//	@Success		201		{object}	dto.PoolResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Open pool for this contest already exists"
//	@Router			/api/admin/boloes [post]
func (h *AdminHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePoolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pool, err := h.poolService.CreatePool(r.Context(), &domain.Pool{
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		ConcursoNumero: req.ConcursoNumero,
		ConcursoFim:    req.ConcursoFim,
		TotalCotas:     req.TotalCotas,
		ValorCota:      req.ValorCota,
		DataFechamento: req.DataFechamento,
	})
	if err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, pools.ToPoolDTO(pool))
}

// UpdatePool godoc
//
//	@Summary		Update an open pool
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Pool ID"
//	@Param			request	body		dto.CreatePoolRequestDTO	true	"Pool fields"
//	@Success		200		{object}	dto.PoolResponseDTO
//	@Failure		404		{object}	utils.Response	"Pool not found"
//	@Failure		409		{object}	utils.Response	"Pool is not editable"
//	@Router			/api/admin/boloes/{id} [put]
func (h *AdminHandler) UpdatePool(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	var req dto.CreatePoolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pool, err := h.poolService.UpdatePool(r.Context(), &domain.Pool{
		ID:             poolID,
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		ConcursoNumero: req.ConcursoNumero,
		ConcursoFim:    req.ConcursoFim,
		TotalCotas:     req.TotalCotas,
		ValorCota:      req.ValorCota,
		DataFechamento: req.DataFechamento,
	})
	if err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pools.ToPoolDTO(pool))
}

// ClosePool godoc
//
//	@Summary	Close quota sales for a pool
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Pool ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Pool not found"
//	@Failure	409	{object}	utils.Response	"Pool is not editable"
//	@Router		/api/admin/boloes/{id}/fechar [post]
func (h *AdminHandler) ClosePool(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	if err := h.poolService.ClosePool(r.Context(), poolID); err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pool closed"})
}

// CancelPool godoc
//
//	@Summary	Cancel a pool
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Pool ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Pool not found"
//	@Router		/api/admin/boloes/{id}/cancelar [post]
func (h *AdminHandler) CancelPool(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	if err := h.poolService.CancelPool(r.Context(), poolID); err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pool cancelled"})
}

// DeletePool godoc
//
//	@Summary	Delete a pool without sold quotas
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Pool ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Pool not found"
//	@Failure	409	{object}	utils.Response	"Pool already has sold quotas"
//	@Router		/api/admin/boloes/{id} [delete]
func (h *AdminHandler) DeletePool(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	if err := h.poolService.DeletePool(r.Context(), poolID); err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pool deleted"})
}

// AddTickets godoc
//
//	@Summary		Register games in a pool
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Pool ID"
//	@Param			request	body		dto.AddTicketsRequestDTO	true	"Games, 15 dezenas each"
//	@Success		201		{array}		dto.TicketResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid dezenas"
//	@Router			/api/admin/boloes/{id}/jogos [post]
func (h *AdminHandler) AddTickets(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	var req dto.AddTicketsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Jogos) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tickets, err := h.poolService.AddTickets(r.Context(), poolID, req.Jogos)
	if err != nil {
		respondPoolServiceError(w, err)
		return
	}
	resp := make([]dto.TicketResponseDTO, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.TicketResponseDTO{ID: t.ID.String(), Dezenas: t.Dezenas})
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// RemoveTicket godoc
//
//	@Summary	Remove a game from an open pool
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id		path	string	true	"Pool ID"
//	@Param		jogoID	path	string	true	"Ticket ID"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Ticket not found"
//	@Router		/api/admin/boloes/{id}/jogos/{jogoID} [delete]
func (h *AdminHandler) RemoveTicket(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	ticketID, err := uuid.Parse(chi.URLParam(r, "jogoID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ticket id")
		return
	}
	if err := h.poolService.RemoveTicket(r.Context(), poolID, ticketID); err != nil {
		respondPoolServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ticket removed"})
}

// Apurate godoc
//
//	@Summary		Apurate one contest manually
//	@Description	Score the pool's games against manually supplied drawn numbers and settle the prize
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Pool ID"
//	@Param			request	body		dto.ApurateRequestDTO	true	"Contest number, 15 drawn dezenas and tier prizes keyed by hits"
//	@Success		200		{object}	apurationservice.ContestReport
//	@Failure		400		{object}	utils.Response	"Invalid dezenas or contest outside range"
//	@Failure		404		{object}	utils.Response	"Pool not found"
//	@Failure		409		{object}	utils.Response	"Contest already apurated"
//	@Router			/api/admin/boloes/{id}/apurar [post]
func (h *AdminHandler) Apurate(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	var req dto.ApurateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	report, err := h.apurator.ApurateContest(r.Context(), poolID, req.ConcursoNumero, req.Dezenas, req.Premiacoes)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, report)
	case errors.Is(err, apurationservice.ErrPoolNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
	case errors.Is(err, apurationservice.ErrContestOutOfRange),
		errors.Is(err, apurationservice.ErrInvalidDezenas),
		errors.Is(err, apurationservice.ErrNoTickets):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apurationservice.ErrContestAlreadyApurated),
		errors.Is(err, apurationservice.ErrPoolAlreadyApurated),
		errors.Is(err, apurationservice.ErrPoolCancelled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ApurateAuto godoc
//
//	@Summary		Apurate pending contests from official results
//	@Description	Fetch published draws for every pending contest of the pool and apurate them
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Pool ID"
//	@Success		200	{object}	apurationservice.PendingReport
//	@Failure		404	{object}	utils.Response	"Pool not found"
//	@Failure		409	{object}	utils.Response	"Pool cancelled"
//	@Router			/api/admin/boloes/{id}/apurar-automatico [post]
func (h *AdminHandler) ApurateAuto(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	report, err := h.apurator.ApuratePending(r.Context(), poolID)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, report)
	case errors.Is(err, apurationservice.ErrPoolNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
	case errors.Is(err, apurationservice.ErrPoolCancelled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Stats godoc
//
//	@Summary	Operational totals for the admin dashboard
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.AdminStatsResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	byStatus, err := h.poolService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	sold, collected, err := h.quotaService.Totals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	balance, err := h.walletService.TotalBalance(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	pending, err := h.paymentService.CountPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminStatsResponseDTO{
		BoloesPorStatus:    byStatus,
		CotasVendidas:      sold,
		ValorArrecadado:    collected,
		SaldoEmCarteiras:   balance,
		PagamentosPendente: pending,
	})
}

// Sweep godoc
//
//	@Summary		Apurate every active pool
//	@Description	Scheduler entry point guarded by the X-Cron-Secret header
//	@Tags			Cron
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Invalid cron secret"
//	@Router			/api/cron/apurar [post]
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if err := h.apurator.ApurateActivePools(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Sweep completed"})
}
