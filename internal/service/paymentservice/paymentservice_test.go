package paymentservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWallets) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	wallets := NewMockWallets(ctrl)
	service := New(repo, wallets)
	defer ctrl.Finish()
	return service, repo, wallets
}

func TestCreateCharge(t *testing.T) {
	service, repo, _ := NewMock(t)
	userID := uuid.New()

	t.Run("Charge carries simulated gateway artifacts", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
				assert.Equal(t, domain.PaymentPending, p.Status)
				assert.True(t, strings.HasPrefix(p.ExternalID, "SIM-"))
				assert.Contains(t, p.QRCode, p.ExternalID)
				assert.NotEmpty(t, p.QRCodeBase64)
				assert.WithinDuration(t, time.Now().Add(chargeExpiry), p.ExpiraEm, time.Minute)
				return p, nil
			})

		payment, err := service.CreateCharge(context.Background(), userID, 50)
		require.NoError(t, err)
		assert.Equal(t, 50.0, payment.Valor)
	})

	t.Run("Amount below minimum", func(t *testing.T) {
		_, err := service.CreateCharge(context.Background(), userID, 0.5)
		assert.Equal(t, ErrInvalidAmount, err)
	})

	t.Run("Amount above maximum", func(t *testing.T) {
		_, err := service.CreateCharge(context.Background(), userID, 10001)
		assert.Equal(t, ErrInvalidAmount, err)
	})
}

func TestConfirmPayment(t *testing.T) {
	userID := uuid.New()
	paymentID := uuid.New()

	t.Run("Pending charge is settled and credited once", func(t *testing.T) {
		service, repo, wallets := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), "SIM-1").
			Return(&domain.Payment{
				ID: paymentID, UserID: userID, Valor: 50,
				Status: domain.PaymentPending, ExternalID: "SIM-1",
				ExpiraEm: time.Now().Add(10 * time.Minute),
			}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), paymentID, gomock.Any()).Return(nil)
		wallets.EXPECT().Credit(gomock.Any(), userID, 50.0, domain.OriginPix, "SIM-1", gomock.Any()).Return(nil)

		payment, err := service.ConfirmPayment(context.Background(), "SIM-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, payment.Status)
		assert.True(t, payment.WebhookRecebido)
		require.NotNil(t, payment.PagoEm)
	})

	t.Run("Replayed webhook does not credit twice", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), "SIM-1").
			Return(&domain.Payment{ID: paymentID, UserID: userID, Status: domain.PaymentPaid}, nil)

		payment, err := service.ConfirmPayment(context.Background(), "SIM-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, payment.Status)
	})

	t.Run("Unknown external id", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), "SIM-404").Return(nil, nil)

		_, err := service.ConfirmPayment(context.Background(), "SIM-404")
		assert.Equal(t, ErrPaymentNotFound, err)
	})

	t.Run("Expired charge is refused", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), "SIM-2").
			Return(&domain.Payment{
				ID: paymentID, UserID: userID, Status: domain.PaymentPending,
				ExpiraEm: time.Now().Add(-time.Minute),
			}, nil)

		_, err := service.ConfirmPayment(context.Background(), "SIM-2")
		assert.Equal(t, ErrPaymentExpired, err)
	})
}
