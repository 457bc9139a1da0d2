package poolrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bolao/internal/domain"
	"bolao/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const poolColumns = `id, nome, descricao, concurso_numero, concurso_fim, concursos_apurados,
	   total_cotas, cotas_disponiveis, valor_cota, status, resultado_dezenas, data_fechamento, created_at`

func scanPool(row pgx.Row) (*domain.Pool, error) {
	var p domain.Pool
	err := row.Scan(&p.ID, &p.Nome, &p.Descricao, &p.ConcursoNumero, &p.ConcursoFim,
		&p.ConcursosApurados, &p.TotalCotas, &p.CotasDisponiveis, &p.ValorCota,
		&p.Status, &p.ResultadoDezenas, &p.DataFechamento, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM boloes
        WHERE id = $1
    `
	pool, err := scanPool(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pool", zap.Error(err))
		return nil, err
	}
	return pool, nil
}

func (r *Repository) FindAll(ctx context.Context, status string, limit int) ([]domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM boloes
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
        LIMIT $2
    `
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		zap.L().Error("can't get pools", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectPools(rows)
}

// FindActive returns pools still eligible for apuration: open or closed.
func (r *Repository) FindActive(ctx context.Context) ([]domain.Pool, error) {
	query := `
        SELECT ` + poolColumns + `
        FROM boloes
        WHERE status = ANY($1)
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, []string{domain.PoolStatusOpen, domain.PoolStatusClosed})
	if err != nil {
		zap.L().Error("can't get active pools", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectPools(rows)
}

func collectPools(rows pgx.Rows) ([]domain.Pool, error) {
	var pools []domain.Pool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			zap.L().Error("can't scan pool row", zap.Error(err))
			return nil, err
		}
		pools = append(pools, *pool)
	}
	return pools, nil
}

func (r *Repository) ExistsOpenByConcurso(ctx context.Context, concurso int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM boloes WHERE concurso_numero = $1 AND status = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, concurso, domain.PoolStatusOpen).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check open pool by contest", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, pool *domain.Pool) (*domain.Pool, error) {
	query := `
        INSERT INTO boloes (nome, descricao, concurso_numero, concurso_fim, concursos_apurados,
                            total_cotas, cotas_disponiveis, valor_cota, status, data_fechamento)
        VALUES ($1, $2, $3, $4, 0, $5, $5, $6, $7, $8)
        RETURNING ` + poolColumns + `
	`
	created, err := scanPool(r.db.QueryRow(ctx, query,
		pool.Nome, pool.Descricao, pool.ConcursoNumero, pool.ConcursoFim,
		pool.TotalCotas, pool.ValorCota, pool.Status, pool.DataFechamento))
	if err != nil {
		zap.L().Error("can't create pool", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, pool *domain.Pool) (*domain.Pool, error) {
	query := `
        UPDATE boloes
        SET nome = $1, descricao = $2, concurso_numero = $3, concurso_fim = $4,
            total_cotas = $5, cotas_disponiveis = $6, valor_cota = $7, status = $8,
            data_fechamento = $9
        WHERE id = $10
        RETURNING ` + poolColumns + `
	`
	var updated *domain.Pool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanPool(r.db.QueryRow(ctx, query,
			pool.Nome, pool.Descricao, pool.ConcursoNumero, pool.ConcursoFim,
			pool.TotalCotas, pool.CotasDisponiveis, pool.ValorCota, pool.Status,
			pool.DataFechamento, pool.ID))
		if err != nil {
			zap.L().Error("can't update pool", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
        UPDATE boloes
        SET status = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update pool status", zap.Error(err))
		return err
	}
	return nil
}

// IncrementApurated bumps the apurated-contest counter and returns the new
// value, so the caller can decide on the terminal transition.
func (r *Repository) IncrementApurated(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
        UPDATE boloes
        SET concursos_apurados = concursos_apurados + 1
        WHERE id = $1
        RETURNING concursos_apurados
    `
	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		zap.L().Error("can't increment apurated counter", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SetResultadoDezenas(ctx context.Context, id uuid.UUID, dezenas []int32) error {
	query := `
        UPDATE boloes
        SET resultado_dezenas = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, dezenas, id); err != nil {
		zap.L().Error("can't set pool drawn numbers", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM jogos_bolao WHERE bolao_id = $1`, id); err != nil {
			zap.L().Error("can't delete pool tickets", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM boloes WHERE id = $1`, id); err != nil {
			zap.L().Error("can't delete pool", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	query := `
        SELECT status, COUNT(*)
        FROM boloes
        GROUP BY status
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count pools by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, nil
}
