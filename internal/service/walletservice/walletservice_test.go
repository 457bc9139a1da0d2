package walletservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCredit(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		valor         float64
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Credit pairs balance update with ledger entry",
			valor: 12.5,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), userID).
					Return(&domain.Wallet{UserID: userID, SaldoDisponivel: 100.10}, nil)
				repo.EXPECT().UpdateAvailable(gomock.Any(), userID, 112.60).Return(nil)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) error {
						assert.Equal(t, domain.TransactionCredit, tx.Tipo)
						assert.Equal(t, domain.TransactionConfirmed, tx.Status)
						assert.Equal(t, 100.10, tx.SaldoAnterior)
						assert.Equal(t, 112.60, tx.SaldoPosterior)
						return nil
					})
			},
		},
		{
			name:          "Non-positive amount rejected",
			valor:         0,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:  "Missing wallet",
			valor: 10,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Credit(context.Background(), userID, tt.valor, domain.OriginPix, "ref", "desc")
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestGetSummary(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().FindByUserID(gomock.Any(), userID).
		Return(&domain.Wallet{UserID: userID, SaldoDisponivel: 55.5}, nil)
	repo.EXPECT().SumByOrigin(gomock.Any(), userID).
		Return(map[string]float64{
			domain.OriginPix:           100,
			domain.OriginQuotaPurchase: -60,
			domain.OriginPoolPrize:     15.5,
		}, nil)

	summary, err := service.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 55.5, summary.SaldoDisponivel)
	assert.Equal(t, -60.0, summary.PorOrigem[domain.OriginQuotaPurchase])
}

func TestGetWallet(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
	_, err := service.GetWallet(context.Background(), userID)
	assert.Equal(t, ErrWalletNotFound, err)
}
