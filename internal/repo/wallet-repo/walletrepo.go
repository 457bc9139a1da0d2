package walletrepo

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

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
        SELECT id, usuario_id, saldo_disponivel, saldo_bloqueado
        FROM carteira
        WHERE usuario_id = $1
    `
	var w domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&w.ID, &w.UserID, &w.SaldoDisponivel, &w.SaldoBloqueado)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
        INSERT INTO carteira (usuario_id, saldo_disponivel, saldo_bloqueado)
        VALUES ($1, 0, 0)
        RETURNING id, usuario_id, saldo_disponivel, saldo_bloqueado
    `
	var w domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&w.ID, &w.UserID, &w.SaldoDisponivel, &w.SaldoBloqueado)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, pg.ErrUniqueViolation
		}
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) UpdateAvailable(ctx context.Context, userID uuid.UUID, saldo float64) error {
	query := `
        UPDATE carteira
        SET saldo_disponivel = $1
        WHERE usuario_id = $2
    `
	if _, err := r.db.Exec(ctx, query, saldo, userID); err != nil {
		zap.L().Error("can't update wallet balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `
        INSERT INTO transacoes (usuario_id, tipo, valor, origem, referencia_id, descricao,
                                saldo_anterior, saldo_posterior, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.db.Exec(ctx, query, tx.UserID, tx.Tipo, tx.Valor, tx.Origem, tx.ReferenciaID,
		tx.Descricao, tx.SaldoAnterior, tx.SaldoPosterior, tx.Status)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindTransactionsByUserID(ctx context.Context, userID uuid.UUID, tipo string, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, usuario_id, tipo, valor, origem, referencia_id, descricao,
               saldo_anterior, saldo_posterior, status, created_at
        FROM transacoes
        WHERE usuario_id = $1 AND ($2 = '' OR tipo = $2)
        ORDER BY created_at DESC
        LIMIT $3
    `
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, query, userID, tipo, limit)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Tipo, &t.Valor, &t.Origem, &t.ReferenciaID,
			&t.Descricao, &t.SaldoAnterior, &t.SaldoPosterior, &t.Status, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// SumByOrigin breaks a user's confirmed ledger down by origin, signed: credits
// add, debits subtract.
func (r *Repository) SumByOrigin(ctx context.Context, userID uuid.UUID) (map[string]float64, error) {
	query := `
        SELECT origem,
               COALESCE(SUM(CASE WHEN tipo = $2 THEN valor ELSE -valor END), 0)
        FROM transacoes
        WHERE usuario_id = $1 AND status = $3
        GROUP BY origem
    `
	rows, err := r.db.Query(ctx, query, userID, domain.TransactionCredit, domain.TransactionConfirmed)
	if err != nil {
		zap.L().Error("can't sum transactions by origin", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	for rows.Next() {
		var origem string
		var total float64
		if err := rows.Scan(&origem, &total); err != nil {
			return nil, err
		}
		sums[origem] = total
	}
	return sums, nil
}

// Totals reports the aggregate available balance held across all wallets.
func (r *Repository) Totals(ctx context.Context) (float64, error) {
	query := `
        SELECT COALESCE(SUM(saldo_disponivel), 0)
        FROM carteira
    `
	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't get wallet totals", zap.Error(err))
		return 0, err
	}
	return total, nil
}
