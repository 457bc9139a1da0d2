package ticketrepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Ticket, error) {
	query := `
        SELECT id, bolao_id, dezenas, acertos, created_at
        FROM jogos_bolao
        WHERE bolao_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get pool tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.PoolID, &t.Dezenas, &t.Acertos, &t.CreatedAt); err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *Repository) CountByPoolID(ctx context.Context, poolID uuid.UUID) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM jogos_bolao
        WHERE bolao_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, poolID).Scan(&count); err != nil {
		zap.L().Error("can't count pool tickets", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateBatch(ctx context.Context, poolID uuid.UUID, dezenas [][]int32) ([]domain.Ticket, error) {
	query := `
        INSERT INTO jogos_bolao (bolao_id, dezenas)
        VALUES ($1, $2)
        RETURNING id, bolao_id, dezenas, acertos, created_at
    `
	var tickets []domain.Ticket
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, d := range dezenas {
			var t domain.Ticket
			err := r.db.QueryRow(ctx, query, poolID, d).
				Scan(&t.ID, &t.PoolID, &t.Dezenas, &t.Acertos, &t.CreatedAt)
			if err != nil {
				zap.L().Error("can't save ticket", zap.Error(err))
				return err
			}
			tickets = append(tickets, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *Repository) Delete(ctx context.Context, poolID, ticketID uuid.UUID) error {
	query := `
        DELETE FROM jogos_bolao
        WHERE id = $1 AND bolao_id = $2
    `
	if _, err := r.db.Exec(ctx, query, ticketID, poolID); err != nil {
		zap.L().Error("can't delete ticket", zap.Error(err))
		return err
	}
	return nil
}

// UpdateAcertos stamps the legacy single-contest hit count on the ticket row.
func (r *Repository) UpdateAcertos(ctx context.Context, ticketID uuid.UUID, acertos int) error {
	query := `
        UPDATE jogos_bolao
        SET acertos = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, acertos, ticketID); err != nil {
		zap.L().Error("can't update ticket hits", zap.Error(err))
		return err
	}
	return nil
}
