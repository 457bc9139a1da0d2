package paymentservice

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bolao/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)
	CountPending(ctx context.Context) (int, error)
}

type Wallets interface {
	Credit(ctx context.Context, userID uuid.UUID, valor float64, origem, referenciaID, descricao string) error
}

type Service struct {
	repo    Repo
	wallets Wallets
	now     func() time.Time
}

func New(repo Repo, wallets Wallets) *Service {
	return &Service{
		repo:    repo,
		wallets: wallets,
		now:     time.Now,
	}
}

const (
	minCharge     = 1.0
	maxCharge     = 10000.0
	chargeExpiry  = 30 * time.Minute
	simGatewayTag = "simulado"
)

var (
	ErrInvalidAmount   = errors.New("amount must be between 1 and 10000")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExpired  = errors.New("payment expired")
)

// CreateCharge issues a simulated Pix charge. The gateway integration is a
// stand-in: the copy-paste payload and QR image are generated locally and the
// charge is settled by the webhook endpoint instead of a real PSP callback.
func (s *Service) CreateCharge(ctx context.Context, userID uuid.UUID, valor float64) (*domain.Payment, error) {
	if valor < minCharge || valor > maxCharge {
		return nil, ErrInvalidAmount
	}

	externalID := fmt.Sprintf("SIM-%d", s.now().UnixNano())
	payload := pixPayload(externalID, valor)

	payment := &domain.Payment{
		UserID:       userID,
		Valor:        valor,
		Status:       domain.PaymentPending,
		Gateway:      simGatewayTag,
		ExternalID:   externalID,
		QRCode:       payload,
		QRCodeBase64: base64.StdEncoding.EncodeToString([]byte(payload)),
		ExpiraEm:     s.now().Add(chargeExpiry),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		zap.L().Error("failed to create pix charge", zap.Error(err))
		return nil, err
	}
	zap.L().Info("pix charge created",
		zap.String("externalID", externalID), zap.Float64("valor", valor))
	return created, nil
}

// ConfirmPayment settles a charge reported as paid. Replayed webhooks are
// acknowledged without crediting twice.
func (s *Service) ConfirmPayment(ctx context.Context, externalID string) (*domain.Payment, error) {
	payment, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status == domain.PaymentPaid {
		zap.L().Info("pix webhook replayed", zap.String("externalID", externalID))
		return payment, nil
	}
	if s.now().After(payment.ExpiraEm) {
		return nil, ErrPaymentExpired
	}

	paidAt := s.now()
	if err := s.repo.MarkPaid(ctx, payment.ID, paidAt); err != nil {
		zap.L().Error("failed to mark pix payment paid", zap.Error(err))
		return nil, err
	}

	descricao := fmt.Sprintf("Depósito via Pix %s", externalID)
	err = s.wallets.Credit(ctx, payment.UserID, payment.Valor, domain.OriginPix, externalID, descricao)
	if err != nil {
		zap.L().Error("pix payment marked paid but wallet credit failed",
			zap.String("externalID", externalID), zap.Error(err))
		return nil, err
	}

	payment.Status = domain.PaymentPaid
	payment.WebhookRecebido = true
	payment.PagoEm = &paidAt
	return payment, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	payments, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list pix payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

// CountPending reports charges still waiting for a webhook.
func (s *Service) CountPending(ctx context.Context) (int, error) {
	return s.repo.CountPending(ctx)
}

// pixPayload builds a BR Code-shaped copy-paste string. Not a spec-complete
// EMV payload; enough for clients to render and for the simulator to round-trip.
func pixPayload(externalID string, valor float64) string {
	return fmt.Sprintf("00020126580014br.gov.bcb.pix0136%s520400005303986540%.2f5802BR6304", externalID, valor)
}
