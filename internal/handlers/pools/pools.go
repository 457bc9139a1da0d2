package pools

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/apurationservice"
	"bolao/internal/service/poolservice"
	"bolao/pkg/utils"
)

type Service interface {
	ListPools(ctx context.Context, status string, limit int) ([]domain.Pool, error)
	GetPool(ctx context.Context, id uuid.UUID) (*domain.Pool, error)
	GetTickets(ctx context.Context, poolID uuid.UUID) ([]domain.Ticket, error)
}

type Apurator interface {
	GetStatus(ctx context.Context, poolID uuid.UUID) (*apurationservice.ApurationStatus, error)
	GetHits(ctx context.Context, poolID uuid.UUID) ([]domain.ContestHit, error)
}

type PoolHandler struct {
	poolService Service
	apurator    Apurator
}

func New(poolService Service, apurator Apurator) *PoolHandler {
	return &PoolHandler{
		poolService: poolService,
		apurator:    apurator,
	}
}

// ToPoolDTO maps a pool to its API shape.
func ToPoolDTO(pool *domain.Pool) dto.PoolResponseDTO {
	return dto.PoolResponseDTO{
		ID:                pool.ID.String(),
		Nome:              pool.Nome,
		Descricao:         pool.Descricao,
		ConcursoNumero:    pool.ConcursoNumero,
		ConcursoFim:       pool.ConcursoFim,
		TotalConcursos:    poolservice.ContestCount(pool),
		ConcursosApurados: pool.ConcursosApurados,
		TotalCotas:        pool.TotalCotas,
		CotasDisponiveis:  pool.CotasDisponiveis,
		ValorCota:         pool.ValorCota,
		Status:            pool.Status,
		ResultadoDezenas:  pool.ResultadoDezenas,
		DataFechamento:    pool.DataFechamento,
		CreatedAt:         pool.CreatedAt,
	}
}

func poolIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// List godoc
//
//	@Summary		List pools
//	@Description	List pools, optionally filtered by status
//	@Tags			Bolões
//	@Produce		json
//	@Param			status	query		string	false	"Pool status filter"	Enums(aberto, fechado, apurado, cancelado)
//	@Success		200		{array}		dto.PoolResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/boloes [get]
func (h *PoolHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	pools, err := h.poolService.ListPools(r.Context(), status, 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PoolResponseDTO, 0, len(pools))
	for i := range pools {
		resp = append(resp, ToPoolDTO(&pools[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get pool details
//	@Tags			Bolões
//	@Produce		json
//	@Param			id	path		string	true	"Pool ID"
//	@Success		200	{object}	dto.PoolResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid pool id"
//	@Failure		404	{object}	utils.Response	"Pool not found"
//	@Router			/api/boloes/{id} [get]
func (h *PoolHandler) Get(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	pool, err := h.poolService.GetPool(r.Context(), poolID)
	if errors.Is(err, poolservice.ErrPoolNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ToPoolDTO(pool))
}

// GetTickets godoc
//
//	@Summary		List the registered games of a pool
//	@Tags			Bolões
//	@Produce		json
//	@Param			id	path		string	true	"Pool ID"
//	@Success		200	{array}		dto.TicketResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid pool id"
//	@Failure		404	{object}	utils.Response	"Pool not found"
//	@Router			/api/boloes/{id}/jogos [get]
func (h *PoolHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	tickets, err := h.poolService.GetTickets(r.Context(), poolID)
	if errors.Is(err, poolservice.ErrPoolNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.TicketResponseDTO, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.TicketResponseDTO{
			ID:      t.ID.String(),
			Dezenas: t.Dezenas,
			Acertos: t.Acertos,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetApuration godoc
//
//	@Summary		Apuration progress of a pool
//	@Description	Per-contest results, prize records and which contests are still pending
//	@Tags			Bolões
//	@Produce		json
//	@Param			id	path		string	true	"Pool ID"
//	@Success		200	{object}	apurationservice.ApurationStatus
//	@Failure		400	{object}	utils.Response	"Invalid pool id"
//	@Failure		404	{object}	utils.Response	"Pool not found"
//	@Router			/api/boloes/{id}/apuracao [get]
func (h *PoolHandler) GetApuration(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	status, err := h.apurator.GetStatus(r.Context(), poolID)
	if errors.Is(err, apurationservice.ErrPoolNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Pool not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}

// GetHits godoc
//
//	@Summary		Per-contest hit counts of a pool's games
//	@Tags			Bolões
//	@Produce		json
//	@Param			id	path		string	true	"Pool ID"
//	@Success		200	{array}		domain.ContestHit
//	@Failure		400	{object}	utils.Response	"Invalid pool id"
//	@Router			/api/boloes/{id}/acertos [get]
func (h *PoolHandler) GetHits(w http.ResponseWriter, r *http.Request) {
	poolID, err := poolIDFromRequest(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pool id")
		return
	}
	hits, err := h.apurator.GetHits(r.Context(), poolID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, hits)
}
