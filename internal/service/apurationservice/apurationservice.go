package apurationservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bolao/internal/domain"
	"bolao/internal/lotofacil"
	"bolao/internal/pg"
	"bolao/internal/service/poolservice"
	"bolao/pkg/validate"
)

type PoolRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pool, error)
	FindActive(ctx context.Context) ([]domain.Pool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	IncrementApurated(ctx context.Context, id uuid.UUID) (int, error)
	SetResultadoDezenas(ctx context.Context, id uuid.UUID, dezenas []int32) error
}

type TicketRepo interface {
	FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Ticket, error)
	UpdateAcertos(ctx context.Context, ticketID uuid.UUID, acertos int) error
}

type ResultRepo interface {
	CreateResult(ctx context.Context, result *domain.ContestResult) (*domain.ContestResult, error)
	FindContestNumbers(ctx context.Context, poolID uuid.UUID) ([]int, error)
	FindResultsByPool(ctx context.Context, poolID uuid.UUID) ([]domain.ContestResult, error)
	CreateHit(ctx context.Context, hit *domain.ContestHit) error
	FindHitsByPool(ctx context.Context, poolID uuid.UUID) ([]domain.ContestHit, error)
	CreatePrize(ctx context.Context, prize *domain.PrizeRecord) error
	ExistsPrize(ctx context.Context, poolID uuid.UUID, concurso int) (bool, error)
	FindPrizesByPool(ctx context.Context, poolID uuid.UUID) ([]domain.PrizeRecord, error)
}

type QuotaRepo interface {
	FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Quota, error)
}

// Wallets is the credit side of the wallet service: pay a prize into a user's
// balance with a paired ledger entry.
type Wallets interface {
	Credit(ctx context.Context, userID uuid.UUID, valor float64, origem, referenciaID, descricao string) error
}

// Resolver fetches official draw results.
type Resolver interface {
	FetchDraw(ctx context.Context, concurso int) (*lotofacil.Draw, error)
}

type Service struct {
	poolRepo   PoolRepo
	ticketRepo TicketRepo
	resultRepo ResultRepo
	quotaRepo  QuotaRepo
	wallets    Wallets
	resolver   Resolver
}

func New(poolRepo PoolRepo, ticketRepo TicketRepo, resultRepo ResultRepo, quotaRepo QuotaRepo, wallets Wallets, resolver Resolver) *Service {
	return &Service{
		poolRepo:   poolRepo,
		ticketRepo: ticketRepo,
		resultRepo: resultRepo,
		quotaRepo:  quotaRepo,
		wallets:    wallets,
		resolver:   resolver,
	}
}

var (
	ErrPoolNotFound           = errors.New("pool not found")
	ErrPoolAlreadyApurated    = errors.New("pool already apurated")
	ErrPoolCancelled          = errors.New("pool cancelled")
	ErrContestOutOfRange      = errors.New("contest outside pool range")
	ErrContestAlreadyApurated = errors.New("contest already apurated")
	ErrInvalidDezenas         = errors.New("dezenas must be 15 distinct numbers between 1 and 25")
	ErrNoTickets              = errors.New("pool has no tickets")
)

// TicketScore is one game's hit count within a scored contest.
type TicketScore struct {
	TicketID uuid.UUID `json:"jogo_id"`
	Dezenas  []int32   `json:"dezenas"`
	Acertos  int       `json:"acertos"`
}

// ContestReport details a freshly scored contest: every game's hits, the
// count of games per paying tier and the settled prize.
type ContestReport struct {
	Concurso    int           `json:"concurso"`
	Dezenas     []int32       `json:"dezenas"`
	Jogos       []TicketScore `json:"jogos"`
	Resumo      map[int]int   `json:"resumo"`
	PremioTotal float64       `json:"premio_total"`
}

// ContestOutcome is one line of an ApuratePending report.
type ContestOutcome struct {
	Concurso    int     `json:"concurso"`
	Apurado     bool    `json:"apurado"`
	PremioTotal float64 `json:"premio_total"`
	Mensagem    string  `json:"mensagem,omitempty"`
}

// PendingReport aggregates one ApuratePending run.
type PendingReport struct {
	Resultados       []ContestOutcome `json:"resultados"`
	PremioTotalGeral float64          `json:"premio_total_geral"`
}

// ApurateContest scores one contest of a pool against the drawn numbers and
// settles its prize. The insert of the result row is the concurrency gate:
// whoever loses the unique-constraint race gets ErrContestAlreadyApurated and
// must not touch hits or prizes.
func (s *Service) ApurateContest(ctx context.Context, poolID uuid.UUID, concurso int, dezenas []int32, premiacoes map[int]float64) (*ContestReport, error) {
	pool, err := s.poolRepo.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	if pool.Status == domain.PoolStatusCancelled {
		return nil, ErrPoolCancelled
	}
	if pool.Status == domain.PoolStatusApurated {
		return nil, ErrPoolAlreadyApurated
	}

	last := pool.ConcursoNumero + poolservice.ContestCount(pool) - 1
	if concurso < pool.ConcursoNumero || concurso > last {
		return nil, ErrContestOutOfRange
	}
	if !validate.Dezenas(dezenas) {
		return nil, ErrInvalidDezenas
	}

	tickets, err := s.ticketRepo.FindByPoolID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, ErrNoTickets
	}

	_, err = s.resultRepo.CreateResult(ctx, &domain.ContestResult{
		PoolID:         poolID,
		ConcursoNumero: concurso,
		Dezenas:        dezenas,
	})
	if errors.Is(err, pg.ErrUniqueViolation) {
		zap.L().Info("contest already apurated",
			zap.String("poolID", poolID.String()), zap.Int("concurso", concurso))
		return nil, ErrContestAlreadyApurated
	}
	if err != nil {
		return nil, err
	}

	report := &ContestReport{
		Concurso: concurso,
		Dezenas:  dezenas,
		Jogos:    make([]TicketScore, 0, len(tickets)),
		Resumo:   map[int]int{11: 0, 12: 0, 13: 0, 14: 0, 15: 0},
	}
	hitCounts := make(map[uuid.UUID]int, len(tickets))
	for _, ticket := range tickets {
		hits := CountHits(ticket.Dezenas, dezenas)
		hitCounts[ticket.ID] = hits
		report.Jogos = append(report.Jogos, TicketScore{
			TicketID: ticket.ID,
			Dezenas:  ticket.Dezenas,
			Acertos:  hits,
		})
		if hits >= 11 {
			report.Resumo[hits]++
		}
		err := s.resultRepo.CreateHit(ctx, &domain.ContestHit{
			TicketID:       ticket.ID,
			PoolID:         poolID,
			ConcursoNumero: concurso,
			Acertos:        hits,
		})
		if err != nil {
			return nil, err
		}
	}

	premio, err := s.distributePrize(ctx, pool, concurso, hitCounts, premiacoes)
	if err != nil {
		return nil, err
	}
	report.PremioTotal = premio

	if !poolservice.IsSeries(pool) {
		if err := s.poolRepo.SetResultadoDezenas(ctx, poolID, dezenas); err != nil {
			return nil, err
		}
		for _, ticket := range tickets {
			if err := s.ticketRepo.UpdateAcertos(ctx, ticket.ID, hitCounts[ticket.ID]); err != nil {
				return nil, err
			}
		}
	}

	apurated, err := s.poolRepo.IncrementApurated(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if apurated >= poolservice.ContestCount(pool) {
		if err := s.poolRepo.UpdateStatus(ctx, poolID, domain.PoolStatusApurated); err != nil {
			return nil, err
		}
		zap.L().Info("pool fully apurated", zap.String("poolID", poolID.String()))
	}
	return report, nil
}

// ApuratePending resolves and apurates every contest of the pool that has no
// recorded result yet, in ascending order. A contest whose result the lottery
// has not published is reported and skipped; later contests are still tried,
// matching how draws can be published out of order during a series. A pool
// already fully apurated is a no-op success with an empty report.
func (s *Service) ApuratePending(ctx context.Context, poolID uuid.UUID) (*PendingReport, error) {
	pool, err := s.poolRepo.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}
	if pool.Status == domain.PoolStatusCancelled {
		return nil, ErrPoolCancelled
	}
	if pool.Status == domain.PoolStatusApurated {
		return &PendingReport{Resultados: []ContestOutcome{}}, nil
	}

	recorded, err := s.resultRepo.FindContestNumbers(ctx, poolID)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(recorded))
	for _, n := range recorded {
		done[n] = true
	}

	report := &PendingReport{Resultados: []ContestOutcome{}}
	for _, concurso := range poolservice.Contests(pool) {
		if done[concurso] {
			continue
		}

		draw, err := s.resolver.FetchDraw(ctx, concurso)
		if errors.Is(err, lotofacil.ErrResultUnavailable) {
			report.Resultados = append(report.Resultados, ContestOutcome{
				Concurso: concurso,
				Mensagem: "resultado ainda não publicado",
			})
			continue
		}
		if err != nil {
			report.Resultados = append(report.Resultados, ContestOutcome{
				Concurso: concurso,
				Mensagem: fmt.Sprintf("falha ao consultar resultado: %v", err),
			})
			continue
		}

		scored, err := s.ApurateContest(ctx, poolID, concurso, draw.Dezenas, draw.Premiacoes)
		switch {
		case errors.Is(err, ErrContestAlreadyApurated):
			report.Resultados = append(report.Resultados, ContestOutcome{Concurso: concurso, Apurado: true})
		case err != nil:
			zap.L().Error("failed to apurate contest",
				zap.String("poolID", poolID.String()), zap.Int("concurso", concurso), zap.Error(err))
			report.Resultados = append(report.Resultados, ContestOutcome{
				Concurso: concurso,
				Mensagem: fmt.Sprintf("falha na apuração: %v", err),
			})
		default:
			report.Resultados = append(report.Resultados, ContestOutcome{
				Concurso:    concurso,
				Apurado:     true,
				PremioTotal: scored.PremioTotal,
			})
			report.PremioTotalGeral += scored.PremioTotal
		}
	}
	return report, nil
}

// ApurateActivePools sweeps every open or closed pool, apurating whatever
// results have been published. Pools are independent, so they run fanned out.
func (s *Service) ApurateActivePools(ctx context.Context) error {
	pools, err := s.poolRepo.FindActive(ctx)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(5)
	for _, pool := range pools {
		pool := pool
		g.Go(func() error {
			report, err := s.ApuratePending(ctx, pool.ID)
			if err != nil {
				zap.L().Error("sweep failed for pool",
					zap.String("poolID", pool.ID.String()), zap.Error(err))
				return nil
			}
			for _, o := range report.Resultados {
				if o.Apurado {
					zap.L().Info("contest apurated by sweep",
						zap.String("poolID", pool.ID.String()), zap.Int("concurso", o.Concurso))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ApurationStatus reports how far a pool's apuration has progressed.
type ApurationStatus struct {
	Pool      *domain.Pool           `json:"bolao"`
	Total     int                    `json:"total_concursos"`
	Apurados  []int                  `json:"concursos_apurados"`
	Pendentes []int                  `json:"concursos_pendentes"`
	Premios   []domain.PrizeRecord   `json:"premiacoes"`
	Results   []domain.ContestResult `json:"resultados"`
}

func (s *Service) GetStatus(ctx context.Context, poolID uuid.UUID) (*ApurationStatus, error) {
	pool, err := s.poolRepo.FindByID(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, ErrPoolNotFound
	}

	recorded, err := s.resultRepo.FindContestNumbers(ctx, poolID)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(recorded))
	for _, n := range recorded {
		done[n] = true
	}
	var pending []int
	for _, concurso := range poolservice.Contests(pool) {
		if !done[concurso] {
			pending = append(pending, concurso)
		}
	}

	prizes, err := s.resultRepo.FindPrizesByPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	results, err := s.resultRepo.FindResultsByPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	return &ApurationStatus{
		Pool:      pool,
		Total:     poolservice.ContestCount(pool),
		Apurados:  recorded,
		Pendentes: pending,
		Premios:   prizes,
		Results:   results,
	}, nil
}

func (s *Service) GetHits(ctx context.Context, poolID uuid.UUID) ([]domain.ContestHit, error) {
	return s.resultRepo.FindHitsByPool(ctx, poolID)
}
