package resultrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bolao/internal/domain"
	"bolao/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// CreateResult inserts the write-once drawn-numbers row for a contest.
// The UNIQUE(bolao_id, concurso_numero) constraint is the only concurrency
// control for apuration: a second apurator loses the insert race and gets
// pg.ErrUniqueViolation.
func (r *Repository) CreateResult(ctx context.Context, result *domain.ContestResult) (*domain.ContestResult, error) {
	query := `
        INSERT INTO resultados_concurso (bolao_id, concurso_numero, dezenas)
        VALUES ($1, $2, $3)
        RETURNING id, bolao_id, concurso_numero, dezenas, created_at
    `
	var created domain.ContestResult
	err := r.db.QueryRow(ctx, query, result.PoolID, result.ConcursoNumero, result.Dezenas).
		Scan(&created.ID, &created.PoolID, &created.ConcursoNumero, &created.Dezenas, &created.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("can't save contest result", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// FindContestNumbers returns the contests already apurated for a pool,
// ascending.
func (r *Repository) FindContestNumbers(ctx context.Context, poolID uuid.UUID) ([]int, error) {
	query := `
        SELECT concurso_numero
        FROM resultados_concurso
        WHERE bolao_id = $1
        ORDER BY concurso_numero ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get apurated contest numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func (r *Repository) FindResultsByPool(ctx context.Context, poolID uuid.UUID) ([]domain.ContestResult, error) {
	query := `
        SELECT id, bolao_id, concurso_numero, dezenas, created_at
        FROM resultados_concurso
        WHERE bolao_id = $1
        ORDER BY concurso_numero ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get contest results", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []domain.ContestResult
	for rows.Next() {
		var res domain.ContestResult
		if err := rows.Scan(&res.ID, &res.PoolID, &res.ConcursoNumero, &res.Dezenas, &res.CreatedAt); err != nil {
			zap.L().Error("can't scan contest result row", zap.Error(err))
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Repository) CreateHit(ctx context.Context, hit *domain.ContestHit) error {
	query := `
        INSERT INTO acertos_concurso (jogo_id, bolao_id, concurso_numero, acertos)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (jogo_id, concurso_numero) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, hit.TicketID, hit.PoolID, hit.ConcursoNumero, hit.Acertos); err != nil {
		zap.L().Error("can't save contest hit", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindHitsByPool(ctx context.Context, poolID uuid.UUID) ([]domain.ContestHit, error) {
	query := `
        SELECT id, jogo_id, bolao_id, concurso_numero, acertos
        FROM acertos_concurso
        WHERE bolao_id = $1
        ORDER BY concurso_numero ASC, acertos DESC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get contest hits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var hits []domain.ContestHit
	for rows.Next() {
		var h domain.ContestHit
		if err := rows.Scan(&h.ID, &h.TicketID, &h.PoolID, &h.ConcursoNumero, &h.Acertos); err != nil {
			zap.L().Error("can't scan contest hit row", zap.Error(err))
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, nil
}

func (r *Repository) CreatePrize(ctx context.Context, prize *domain.PrizeRecord) error {
	query := `
        INSERT INTO premiacoes_bolao (bolao_id, concurso_numero, premio_total, distribuido)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, prize.PoolID, prize.ConcursoNumero, prize.PremioTotal, prize.Distribuido); err != nil {
		if pg.IsUniqueViolation(err) {
			return pg.ErrUniqueViolation
		}
		zap.L().Error("can't save prize record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ExistsPrize(ctx context.Context, poolID uuid.UUID, concurso int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM premiacoes_bolao WHERE bolao_id = $1 AND concurso_numero = $2
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, poolID, concurso).Scan(&exists); err != nil {
		zap.L().Error("can't check prize record", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindPrizesByPool(ctx context.Context, poolID uuid.UUID) ([]domain.PrizeRecord, error) {
	query := `
        SELECT id, bolao_id, concurso_numero, premio_total, distribuido, created_at
        FROM premiacoes_bolao
        WHERE bolao_id = $1
        ORDER BY concurso_numero ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get prize records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var prizes []domain.PrizeRecord
	for rows.Next() {
		var p domain.PrizeRecord
		if err := rows.Scan(&p.ID, &p.PoolID, &p.ConcursoNumero, &p.PremioTotal, &p.Distribuido, &p.CreatedAt); err != nil {
			zap.L().Error("can't scan prize row", zap.Error(err))
			return nil, err
		}
		prizes = append(prizes, p)
	}
	return prizes, nil
}
