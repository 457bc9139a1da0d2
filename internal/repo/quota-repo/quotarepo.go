package quotarepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// CallComprarCota runs the purchase through the comprar_cota stored procedure.
// All checks (pool open, quotas available, buyer balance) and the paired
// debit + ledger insert happen inside a single database transaction there;
// the procedure always returns a JSON verdict instead of raising.
func (r *Repository) CallComprarCota(ctx context.Context, userID, poolID uuid.UUID, quantity int) (*domain.PurchaseResult, error) {
	query := `SELECT comprar_cota($1, $2, $3)`
	var result domain.PurchaseResult
	if err := r.db.QueryRow(ctx, query, userID, poolID, quantity).Scan(&result); err != nil {
		zap.L().Error("can't call comprar_cota", zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (r *Repository) FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Quota, error) {
	query := `
        SELECT id, bolao_id, usuario_id, valor_pago, created_at
        FROM cotas
        WHERE bolao_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, poolID)
	if err != nil {
		zap.L().Error("can't get pool quotas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectQuotas(rows)
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Quota, error) {
	query := `
        SELECT id, bolao_id, usuario_id, valor_pago, created_at
        FROM cotas
        WHERE usuario_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user quotas", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectQuotas(rows)
}

func (r *Repository) CountByPoolID(ctx context.Context, poolID uuid.UUID) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM cotas
        WHERE bolao_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, poolID).Scan(&count); err != nil {
		zap.L().Error("can't count pool quotas", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Totals reports sold-quota count and collected value across all pools.
func (r *Repository) Totals(ctx context.Context) (int, float64, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(valor_pago), 0)
        FROM cotas
    `
	var count int
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		zap.L().Error("can't get quota totals", zap.Error(err))
		return 0, 0, err
	}
	return count, total, nil
}

func collectQuotas(rows pgx.Rows) ([]domain.Quota, error) {
	var quotas []domain.Quota
	for rows.Next() {
		var q domain.Quota
		if err := rows.Scan(&q.ID, &q.PoolID, &q.UserID, &q.ValorPago, &q.CreatedAt); err != nil {
			zap.L().Error("can't scan quota row", zap.Error(err))
			return nil, err
		}
		quotas = append(quotas, q)
	}
	return quotas, nil
}
