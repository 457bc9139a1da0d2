package poolservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bolao/internal/domain"
	"bolao/pkg/validate"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pool, error)
	FindAll(ctx context.Context, status string, limit int) ([]domain.Pool, error)
	FindActive(ctx context.Context) ([]domain.Pool, error)
	ExistsOpenByConcurso(ctx context.Context, concurso int) (bool, error)
	Create(ctx context.Context, pool *domain.Pool) (*domain.Pool, error)
	Update(ctx context.Context, pool *domain.Pool) (*domain.Pool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type TicketRepo interface {
	FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Ticket, error)
	CreateBatch(ctx context.Context, poolID uuid.UUID, dezenas [][]int32) ([]domain.Ticket, error)
	Delete(ctx context.Context, poolID, ticketID uuid.UUID) error
}

type QuotaRepo interface {
	CountByPoolID(ctx context.Context, poolID uuid.UUID) (int, error)
}

type Service struct {
	poolRepo   Repo
	ticketRepo TicketRepo
	quotaRepo  QuotaRepo
}

func New(poolRepo Repo, ticketRepo TicketRepo, quotaRepo QuotaRepo) *Service {
	return &Service{
		poolRepo:   poolRepo,
		ticketRepo: ticketRepo,
		quotaRepo:  quotaRepo,
	}
}

var (
	ErrPoolNotFound     = errors.New("pool not found")
	ErrPoolNotEditable  = errors.New("pool is not editable")
	ErrInvalidContest   = errors.New("invalid contest range")
	ErrInvalidQuotas    = errors.New("invalid quota configuration")
	ErrInvalidDezenas   = errors.New("dezenas must be 15 distinct numbers between 1 and 25")
	ErrDuplicateContest = errors.New("open pool for this contest already exists")
	ErrPoolHasQuotas    = errors.New("pool already has sold quotas")
	ErrTicketNotFound   = errors.New("ticket not found")
)

// IsSeries reports whether a pool is a teimosinha spanning more than one
// contest.
func IsSeries(pool *domain.Pool) bool {
	return pool.ConcursoFim != nil && *pool.ConcursoFim > pool.ConcursoNumero
}

// ContestCount is how many contests the pool covers; always at least 1.
func ContestCount(pool *domain.Pool) int {
	if IsSeries(pool) {
		return *pool.ConcursoFim - pool.ConcursoNumero + 1
	}
	return 1
}

// Contests lists every contest number the pool covers, ascending.
func Contests(pool *domain.Pool) []int {
	count := ContestCount(pool)
	contests := make([]int, 0, count)
	for i := 0; i < count; i++ {
		contests = append(contests, pool.ConcursoNumero+i)
	}
	return contests
}

func (s *Service) CreatePool(ctx context.Context, pool *domain.Pool) (*domain.Pool, error) {
	if pool.ConcursoNumero <= 0 {
		return nil, ErrInvalidContest
	}
	if pool.ConcursoFim != nil && *pool.ConcursoFim < pool.ConcursoNumero {
		return nil, ErrInvalidContest
	}
	if pool.TotalCotas <= 0 || pool.ValorCota <= 0 {
		return nil, ErrInvalidQuotas
	}

	exists, err := s.poolRepo.ExistsOpenByConcurso(ctx, pool.ConcursoNumero)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Info("open pool for contest already exists", zap.Int("concurso", pool.ConcursoNumero))
		return nil, ErrDuplicateContest
	}

	pool.Status = domain.PoolStatusOpen
	return s.poolRepo.Create(ctx, pool)
}

func (s *Service) GetPool(ctx context.Context, id uuid.UUID) (*domain.Pool, error) {
	pool, err := s.poolRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	return pool, nil
}

func (s *Service) ListPools(ctx context.Context, status string, limit int) ([]domain.Pool, error) {
	pools, err := s.poolRepo.FindAll(ctx, status, limit)
	if err != nil {
		zap.L().Error("failed to list pools", zap.Error(err))
		return nil, err
	}
	return pools, nil
}

func (s *Service) UpdatePool(ctx context.Context, pool *domain.Pool) (*domain.Pool, error) {
	existing, err := s.GetPool(ctx, pool.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.PoolStatusOpen {
		return nil, ErrPoolNotEditable
	}
	if pool.ConcursoFim != nil && *pool.ConcursoFim < pool.ConcursoNumero {
		return nil, ErrInvalidContest
	}
	if pool.TotalCotas <= 0 || pool.ValorCota <= 0 {
		return nil, ErrInvalidQuotas
	}

	sold := existing.TotalCotas - existing.CotasDisponiveis
	if pool.TotalCotas < sold {
		return nil, ErrInvalidQuotas
	}
	pool.CotasDisponiveis = pool.TotalCotas - sold
	pool.Status = existing.Status

	return s.poolRepo.Update(ctx, pool)
}

// ClosePool stops quota sales. Apuration is the only path out of fechado.
func (s *Service) ClosePool(ctx context.Context, id uuid.UUID) error {
	pool, err := s.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if pool.Status != domain.PoolStatusOpen {
		return ErrPoolNotEditable
	}
	return s.poolRepo.UpdateStatus(ctx, id, domain.PoolStatusClosed)
}

func (s *Service) CancelPool(ctx context.Context, id uuid.UUID) error {
	pool, err := s.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if pool.Status == domain.PoolStatusApurated || pool.Status == domain.PoolStatusCancelled {
		return ErrPoolNotEditable
	}
	return s.poolRepo.UpdateStatus(ctx, id, domain.PoolStatusCancelled)
}

// DeletePool removes a pool and its tickets. Refused once any quota is sold;
// cancel instead.
func (s *Service) DeletePool(ctx context.Context, id uuid.UUID) error {
	pool, err := s.GetPool(ctx, id)
	if err != nil {
		return err
	}
	sold, err := s.quotaRepo.CountByPoolID(ctx, pool.ID)
	if err != nil {
		return err
	}
	if sold > 0 {
		return ErrPoolHasQuotas
	}
	return s.poolRepo.Delete(ctx, id)
}

func (s *Service) AddTickets(ctx context.Context, poolID uuid.UUID, dezenas [][]int32) ([]domain.Ticket, error) {
	pool, err := s.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool.Status != domain.PoolStatusOpen && pool.Status != domain.PoolStatusClosed {
		return nil, ErrPoolNotEditable
	}
	for _, d := range dezenas {
		if !validate.Dezenas(d) {
			return nil, ErrInvalidDezenas
		}
	}
	return s.ticketRepo.CreateBatch(ctx, poolID, dezenas)
}

func (s *Service) GetTickets(ctx context.Context, poolID uuid.UUID) ([]domain.Ticket, error) {
	if _, err := s.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.ticketRepo.FindByPoolID(ctx, poolID)
}

func (s *Service) RemoveTicket(ctx context.Context, poolID, ticketID uuid.UUID) error {
	pool, err := s.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if pool.Status != domain.PoolStatusOpen {
		return ErrPoolNotEditable
	}
	tickets, err := s.ticketRepo.FindByPoolID(ctx, poolID)
	if err != nil {
		return err
	}
	for _, t := range tickets {
		if t.ID == ticketID {
			return s.ticketRepo.Delete(ctx, poolID, ticketID)
		}
	}
	return ErrTicketNotFound
}

// Stats aggregates pool counts by status for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.poolRepo.CountByStatus(ctx)
	if err != nil {
		zap.L().Error("failed to get pool stats", zap.Error(err))
		return nil, err
	}
	return counts, nil
}

// CloseExpired closes open pools whose sale deadline has passed.
func (s *Service) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	pools, err := s.poolRepo.FindAll(ctx, domain.PoolStatusOpen, 0)
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, pool := range pools {
		if pool.DataFechamento == nil || pool.DataFechamento.After(now) {
			continue
		}
		if err := s.poolRepo.UpdateStatus(ctx, pool.ID, domain.PoolStatusClosed); err != nil {
			zap.L().Error("failed to close expired pool", zap.String("poolID", pool.ID.String()), zap.Error(err))
			continue
		}
		closed++
	}
	return closed, nil
}
