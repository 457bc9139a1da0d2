package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bolao/internal/domain"
)

type Repo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	UpdateAvailable(ctx context.Context, userID uuid.UUID, saldo float64) error
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	FindTransactionsByUserID(ctx context.Context, userID uuid.UUID, tipo string, limit int) ([]domain.Transaction, error)
	SumByOrigin(ctx context.Context, userID uuid.UUID) (map[string]float64, error)
	Totals(ctx context.Context) (float64, error)
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
	ErrWalletNotFound = errors.New("wallet not found")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.repo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit adds funds to a user's balance and appends the paired ledger entry
// carrying the before and after balances.
func (s *Service) Credit(ctx context.Context, userID uuid.UUID, valor float64, origem, referenciaID, descricao string) error {
	if valor <= 0 {
		return ErrInvalidAmount
	}
	wallet, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return ErrWalletNotFound
	}

	anterior := wallet.SaldoDisponivel
	posterior, _ := decimal.NewFromFloat(anterior).
		Add(decimal.NewFromFloat(valor)).
		Round(2).
		Float64()

	if err := s.repo.UpdateAvailable(ctx, userID, posterior); err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return err
	}

	err = s.repo.CreateTransaction(ctx, &domain.Transaction{
		UserID:         userID,
		Tipo:           domain.TransactionCredit,
		Valor:          valor,
		Origem:         origem,
		ReferenciaID:   referenciaID,
		Descricao:      descricao,
		SaldoAnterior:  anterior,
		SaldoPosterior: posterior,
		Status:         domain.TransactionConfirmed,
	})
	if err != nil {
		zap.L().Error("wallet credited but ledger entry failed",
			zap.String("userID", userID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetTransactions(ctx context.Context, userID uuid.UUID, tipo string, limit int) ([]domain.Transaction, error) {
	txs, err := s.repo.FindTransactionsByUserID(ctx, userID, tipo, limit)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// Summary is a user's financial picture: current balance plus lifetime totals
// per origin.
type Summary struct {
	SaldoDisponivel float64            `json:"saldo_disponivel"`
	SaldoBloqueado  float64            `json:"saldo_bloqueado"`
	PorOrigem       map[string]float64 `json:"por_origem"`
}

func (s *Service) GetSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	sums, err := s.repo.SumByOrigin(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		SaldoDisponivel: wallet.SaldoDisponivel,
		SaldoBloqueado:  wallet.SaldoBloqueado,
		PorOrigem:       sums,
	}, nil
}

// TotalBalance is the aggregate available balance held across all wallets.
func (s *Service) TotalBalance(ctx context.Context) (float64, error) {
	return s.repo.Totals(ctx)
}
