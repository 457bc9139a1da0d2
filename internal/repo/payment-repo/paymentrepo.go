package paymentrepo

import (
	"context"
	"errors"
	"time"

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

const paymentColumns = `id, usuario_id, valor, status, gateway, external_id, qr_code,
	   qr_code_base64, expira_em, webhook_recebido, pago_em, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.Valor, &p.Status, &p.Gateway, &p.ExternalID,
		&p.QRCode, &p.QRCodeBase64, &p.ExpiraEm, &p.WebhookRecebido, &p.PagoEm, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO pagamentos_pix (usuario_id, valor, status, gateway, external_id,
                                    qr_code, qr_code_base64, expira_em)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + paymentColumns + `
	`
	created, err := scanPayment(r.db.QueryRow(ctx, query,
		payment.UserID, payment.Valor, payment.Status, payment.Gateway,
		payment.ExternalID, payment.QRCode, payment.QRCodeBase64, payment.ExpiraEm))
	if err != nil {
		zap.L().Error("can't create pix payment", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM pagamentos_pix
        WHERE external_id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pix payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	query := `
        UPDATE pagamentos_pix
        SET status = $1, webhook_recebido = TRUE, pago_em = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, domain.PaymentPaid, paidAt, id); err != nil {
		zap.L().Error("can't mark pix payment paid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM pagamentos_pix
        WHERE usuario_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user pix payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan pix payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM pagamentos_pix
        WHERE status = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, domain.PaymentPending).Scan(&count); err != nil {
		zap.L().Error("can't count pending pix payments", zap.Error(err))
		return 0, err
	}
	return count, nil
}
