package quotaservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bolao/internal/domain"
)

type Repo interface {
	CallComprarCota(ctx context.Context, userID, poolID uuid.UUID, quantity int) (*domain.PurchaseResult, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Quota, error)
	FindByPoolID(ctx context.Context, poolID uuid.UUID) ([]domain.Quota, error)
	Totals(ctx context.Context) (int, float64, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 100")
	ErrPurchaseDenied  = errors.New("purchase denied")
)

// Purchase buys quotas through the comprar_cota database procedure, which
// locks the pool and the buyer's wallet and settles the debit atomically.
// A denied purchase comes back as ErrPurchaseDenied with the procedure's
// verdict attached for the caller to surface.
func (s *Service) Purchase(ctx context.Context, userID, poolID uuid.UUID, quantity int) (*domain.PurchaseResult, error) {
	if quantity < 1 || quantity > 100 {
		return nil, ErrInvalidQuantity
	}

	result, err := s.repo.CallComprarCota(ctx, userID, poolID, quantity)
	if err != nil {
		zap.L().Error("quota purchase failed",
			zap.String("userID", userID.String()),
			zap.String("poolID", poolID.String()),
			zap.Error(err))
		return nil, err
	}
	if !result.Sucesso {
		zap.L().Info("quota purchase denied",
			zap.String("userID", userID.String()),
			zap.String("poolID", poolID.String()),
			zap.String("motivo", result.Mensagem))
		return result, ErrPurchaseDenied
	}
	return result, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Quota, error) {
	quotas, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user quotas", zap.Error(err))
		return nil, err
	}
	return quotas, nil
}

func (s *Service) ListByPool(ctx context.Context, poolID uuid.UUID) ([]domain.Quota, error) {
	quotas, err := s.repo.FindByPoolID(ctx, poolID)
	if err != nil {
		zap.L().Error("failed to list pool quotas", zap.Error(err))
		return nil, err
	}
	return quotas, nil
}

// Totals reports sold-quota count and collected value across all pools.
func (s *Service) Totals(ctx context.Context) (int, float64, error) {
	return s.repo.Totals(ctx)
}
