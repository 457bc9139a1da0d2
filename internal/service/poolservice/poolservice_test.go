package poolservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTicketRepo, *MockQuotaRepo) {
	ctrl := gomock.NewController(t)
	poolRepo := NewMockRepo(ctrl)
	ticketRepo := NewMockTicketRepo(ctrl)
	quotaRepo := NewMockQuotaRepo(ctrl)
	service := New(poolRepo, ticketRepo, quotaRepo)
	defer ctrl.Finish()
	return service, poolRepo, ticketRepo, quotaRepo
}

func intPtr(n int) *int { return &n }

func TestContestHelpers(t *testing.T) {
	single := &domain.Pool{ConcursoNumero: 3000}
	assert.False(t, IsSeries(single))
	assert.Equal(t, 1, ContestCount(single))
	assert.Equal(t, []int{3000}, Contests(single))

	sameEnd := &domain.Pool{ConcursoNumero: 3000, ConcursoFim: intPtr(3000)}
	assert.False(t, IsSeries(sameEnd))
	assert.Equal(t, 1, ContestCount(sameEnd))

	series := &domain.Pool{ConcursoNumero: 3000, ConcursoFim: intPtr(3002)}
	assert.True(t, IsSeries(series))
	assert.Equal(t, 3, ContestCount(series))
	assert.Equal(t, []int{3000, 3001, 3002}, Contests(series))
}

func TestCreatePool(t *testing.T) {
	service, poolRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		pool          *domain.Pool
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid single-contest pool",
			pool: &domain.Pool{Nome: "Bolão 3000", ConcursoNumero: 3000, TotalCotas: 10, ValorCota: 15},
			prepareMock: func() {
				poolRepo.EXPECT().ExistsOpenByConcurso(gomock.Any(), 3000).Return(false, nil)
				poolRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Pool) (*domain.Pool, error) {
						assert.Equal(t, domain.PoolStatusOpen, p.Status)
						return p, nil
					})
			},
		},
		{
			name:          "Contest number missing",
			pool:          &domain.Pool{TotalCotas: 10, ValorCota: 15},
			prepareMock:   func() {},
			expectedError: ErrInvalidContest,
		},
		{
			name:          "Series end before start",
			pool:          &domain.Pool{ConcursoNumero: 3000, ConcursoFim: intPtr(2999), TotalCotas: 10, ValorCota: 15},
			prepareMock:   func() {},
			expectedError: ErrInvalidContest,
		},
		{
			name:          "Non-positive quota value",
			pool:          &domain.Pool{ConcursoNumero: 3000, TotalCotas: 10, ValorCota: 0},
			prepareMock:   func() {},
			expectedError: ErrInvalidQuotas,
		},
		{
			name: "Open pool for contest already exists",
			pool: &domain.Pool{ConcursoNumero: 3000, TotalCotas: 10, ValorCota: 15},
			prepareMock: func() {
				poolRepo.EXPECT().ExistsOpenByConcurso(gomock.Any(), 3000).Return(true, nil)
			},
			expectedError: ErrDuplicateContest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.CreatePool(context.Background(), tt.pool)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAddTickets(t *testing.T) {
	service, poolRepo, ticketRepo, _ := NewMock(t)
	poolID := uuid.New()

	valid := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	tests := []struct {
		name          string
		dezenas       [][]int32
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Valid ticket batch on open pool",
			dezenas: [][]int32{valid},
			prepareMock: func() {
				poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusOpen}, nil)
				ticketRepo.EXPECT().CreateBatch(gomock.Any(), poolID, [][]int32{valid}).
					Return([]domain.Ticket{{PoolID: poolID, Dezenas: valid}}, nil)
			},
		},
		{
			name:    "Wrong dezenas count rejected",
			dezenas: [][]int32{{1, 2, 3}},
			prepareMock: func() {
				poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusOpen}, nil)
			},
			expectedError: ErrInvalidDezenas,
		},
		{
			name:    "Apurated pool rejected",
			dezenas: [][]int32{valid},
			prepareMock: func() {
				poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusApurated}, nil)
			},
			expectedError: ErrPoolNotEditable,
		},
		{
			name:    "Pool not found",
			dezenas: [][]int32{valid},
			prepareMock: func() {
				poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(nil, nil)
			},
			expectedError: ErrPoolNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.AddTickets(context.Background(), poolID, tt.dezenas)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestDeletePool(t *testing.T) {
	service, poolRepo, _, quotaRepo := NewMock(t)
	poolID := uuid.New()

	t.Run("Pool with sold quotas is kept", func(t *testing.T) {
		poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
			Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusOpen}, nil)
		quotaRepo.EXPECT().CountByPoolID(gomock.Any(), poolID).Return(3, nil)

		err := service.DeletePool(context.Background(), poolID)
		assert.Equal(t, ErrPoolHasQuotas, err)
	})

	t.Run("Pool without quotas is deleted", func(t *testing.T) {
		poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
			Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusOpen}, nil)
		quotaRepo.EXPECT().CountByPoolID(gomock.Any(), poolID).Return(0, nil)
		poolRepo.EXPECT().Delete(gomock.Any(), poolID).Return(nil)

		err := service.DeletePool(context.Background(), poolID)
		assert.NoError(t, err)
	})
}

func TestClosePool(t *testing.T) {
	service, poolRepo, _, _ := NewMock(t)
	poolID := uuid.New()

	t.Run("Open pool closes", func(t *testing.T) {
		poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
			Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusOpen}, nil)
		poolRepo.EXPECT().UpdateStatus(gomock.Any(), poolID, domain.PoolStatusClosed).Return(nil)

		assert.NoError(t, service.ClosePool(context.Background(), poolID))
	})

	t.Run("Closed pool stays closed", func(t *testing.T) {
		poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
			Return(&domain.Pool{ID: poolID, Status: domain.PoolStatusClosed}, nil)

		assert.Equal(t, ErrPoolNotEditable, service.ClosePool(context.Background(), poolID))
	})
}

func TestUpdatePoolKeepsSoldQuotas(t *testing.T) {
	service, poolRepo, _, _ := NewMock(t)
	poolID := uuid.New()

	existing := &domain.Pool{
		ID: poolID, Status: domain.PoolStatusOpen,
		ConcursoNumero: 3000, TotalCotas: 10, CotasDisponiveis: 4, ValorCota: 15,
	}
	poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(existing, nil)
	poolRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Pool) (*domain.Pool, error) {
			assert.Equal(t, 14, p.CotasDisponiveis)
			return p, nil
		})

	updated := &domain.Pool{ID: poolID, ConcursoNumero: 3000, TotalCotas: 20, ValorCota: 15}
	_, err := service.UpdatePool(context.Background(), updated)
	assert.NoError(t, err)
}
