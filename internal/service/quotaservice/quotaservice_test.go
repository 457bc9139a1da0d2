package quotaservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

func TestPurchase(t *testing.T) {
	service, repo := NewMock(t)
	userID := uuid.New()
	poolID := uuid.New()

	tests := []struct {
		name          string
		quantity      int
		prepareMock   func()
		expectedError error
		checkResult   func(t *testing.T, result *domain.PurchaseResult)
	}{
		{
			name:     "Successful purchase",
			quantity: 2,
			prepareMock: func() {
				repo.EXPECT().CallComprarCota(gomock.Any(), userID, poolID, 2).
					Return(&domain.PurchaseResult{Sucesso: true, ValorPago: 30, SaldoRestante: 70}, nil)
			},
			checkResult: func(t *testing.T, result *domain.PurchaseResult) {
				assert.Equal(t, 30.0, result.ValorPago)
				assert.Equal(t, 70.0, result.SaldoRestante)
			},
		},
		{
			name:          "Zero quantity rejected before hitting the database",
			quantity:      0,
			prepareMock:   func() {},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:          "Oversized quantity rejected",
			quantity:      101,
			prepareMock:   func() {},
			expectedError: ErrInvalidQuantity,
		},
		{
			name:     "Procedure verdict: insufficient balance",
			quantity: 1,
			prepareMock: func() {
				repo.EXPECT().CallComprarCota(gomock.Any(), userID, poolID, 1).
					Return(&domain.PurchaseResult{Sucesso: false, Mensagem: "Saldo insuficiente"}, nil)
			},
			expectedError: ErrPurchaseDenied,
			checkResult: func(t *testing.T, result *domain.PurchaseResult) {
				assert.Equal(t, "Saldo insuficiente", result.Mensagem)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Purchase(context.Background(), userID, poolID, tt.quantity)
			assert.Equal(t, tt.expectedError, err)
			if tt.checkResult != nil {
				tt.checkResult(t, result)
			}
		})
	}
}
