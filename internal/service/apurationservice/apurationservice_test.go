package apurationservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/domain"
	"bolao/internal/lotofacil"
	"bolao/internal/pg"
)

type mocks struct {
	poolRepo   *MockPoolRepo
	ticketRepo *MockTicketRepo
	resultRepo *MockResultRepo
	quotaRepo  *MockQuotaRepo
	wallets    *MockWallets
	resolver   *MockResolver
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		poolRepo:   NewMockPoolRepo(ctrl),
		ticketRepo: NewMockTicketRepo(ctrl),
		resultRepo: NewMockResultRepo(ctrl),
		quotaRepo:  NewMockQuotaRepo(ctrl),
		wallets:    NewMockWallets(ctrl),
		resolver:   NewMockResolver(ctrl),
	}
	service := New(m.poolRepo, m.ticketRepo, m.resultRepo, m.quotaRepo, m.wallets, m.resolver)
	defer ctrl.Finish()
	return service, m
}

func intPtr(n int) *int { return &n }

var drawn = []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

func TestCountHits(t *testing.T) {
	tests := []struct {
		name     string
		ticket   []int32
		expected int
	}{
		{"All fifteen match", []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, 15},
		{"Eleven match", []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 17, 18, 19}, 11},
		{"None match", []int32{16, 17, 18, 19, 20, 21, 22, 23, 24, 25}, 0},
		{"Empty ticket", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountHits(tt.ticket, drawn))
		})
	}
}

func TestApurateContestPreconditions(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	tests := []struct {
		name          string
		concurso      int
		dezenas       []int32
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Pool not found",
			concurso: 3000,
			dezenas:  drawn,
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(nil, nil)
			},
			expectedError: ErrPoolNotFound,
		},
		{
			name:     "Pool already apurated",
			concurso: 3000,
			dezenas:  drawn,
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusApurated}, nil)
			},
			expectedError: ErrPoolAlreadyApurated,
		},
		{
			name:     "Cancelled pool",
			concurso: 3000,
			dezenas:  drawn,
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusCancelled}, nil)
			},
			expectedError: ErrPoolCancelled,
		},
		{
			name:     "Contest outside series range",
			concurso: 3005,
			dezenas:  drawn,
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, ConcursoFim: intPtr(3002), Status: domain.PoolStatusClosed}, nil)
			},
			expectedError: ErrContestOutOfRange,
		},
		{
			name:     "Dezenas with duplicates",
			concurso: 3000,
			dezenas:  []int32{1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusClosed}, nil)
			},
			expectedError: ErrInvalidDezenas,
		},
		{
			name:     "Pool without tickets",
			concurso: 3000,
			dezenas:  drawn,
			prepareMock: func() {
				m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
					Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusClosed}, nil)
				m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return(nil, nil)
			},
			expectedError: ErrNoTickets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.ApurateContest(context.Background(), poolID, tt.concurso, tt.dezenas, nil)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestApurateContestLosesInsertRace(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
		Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusClosed}, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).
		Return([]domain.Ticket{{ID: uuid.New(), Dezenas: drawn}}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).
		Return(nil, pg.ErrUniqueViolation)

	_, err := service.ApurateContest(context.Background(), poolID, 3000, drawn, nil)
	assert.Equal(t, ErrContestAlreadyApurated, err)
}

func TestApurateContestDistributesProportionally(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()
	ticketID := uuid.New()
	userA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	userB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	pool := &domain.Pool{
		ID: poolID, Nome: "Bolão 3000", ConcursoNumero: 3000,
		ValorCota: 10, Status: domain.PoolStatusClosed,
	}
	// 11 hits against the drawn set
	ticket := domain.Ticket{ID: ticketID, PoolID: poolID,
		Dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 16, 17, 18, 19}}

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Ticket{ticket}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).Return(&domain.ContestResult{}, nil)
	m.resultRepo.EXPECT().CreateHit(gomock.Any(), &domain.ContestHit{
		TicketID: ticketID, PoolID: poolID, ConcursoNumero: 3000, Acertos: 11,
	}).Return(nil)
	m.resultRepo.EXPECT().ExistsPrize(gomock.Any(), poolID, 3000).Return(false, nil)
	// userA paid for two shares, userB for one: 20.00 + 10.00 of the 30.00 prize
	m.quotaRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Quota{
		{PoolID: poolID, UserID: userA, ValorPago: 20},
		{PoolID: poolID, UserID: userB, ValorPago: 10},
	}, nil)
	m.wallets.EXPECT().Credit(gomock.Any(), userA, 20.0, domain.OriginPoolPrize, poolID.String(), gomock.Any()).Return(nil)
	m.wallets.EXPECT().Credit(gomock.Any(), userB, 10.0, domain.OriginPoolPrize, poolID.String(), gomock.Any()).Return(nil)
	m.resultRepo.EXPECT().CreatePrize(gomock.Any(), &domain.PrizeRecord{
		PoolID: poolID, ConcursoNumero: 3000, PremioTotal: 30, Distribuido: true,
	}).Return(nil)
	m.poolRepo.EXPECT().SetResultadoDezenas(gomock.Any(), poolID, drawn).Return(nil)
	m.ticketRepo.EXPECT().UpdateAcertos(gomock.Any(), ticketID, 11).Return(nil)
	m.poolRepo.EXPECT().IncrementApurated(gomock.Any(), poolID).Return(1, nil)
	m.poolRepo.EXPECT().UpdateStatus(gomock.Any(), poolID, domain.PoolStatusApurated).Return(nil)

	report, err := service.ApurateContest(context.Background(), poolID, 3000, drawn, map[int]float64{11: 30})
	require.NoError(t, err)
	assert.Equal(t, 3000, report.Concurso)
	assert.Equal(t, 30.0, report.PremioTotal)
	assert.Equal(t, 1, report.Resumo[11])
	require.Len(t, report.Jogos, 1)
	assert.Equal(t, 11, report.Jogos[0].Acertos)
}

func TestApurateContestZeroPrize(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()
	ticketID := uuid.New()

	pool := &domain.Pool{ID: poolID, ConcursoNumero: 3000, ValorCota: 10, Status: domain.PoolStatusClosed}
	// 10 hits, below the lowest paying tier
	ticket := domain.Ticket{ID: ticketID, PoolID: poolID,
		Dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19, 20}}

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Ticket{ticket}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).Return(&domain.ContestResult{}, nil)
	m.resultRepo.EXPECT().CreateHit(gomock.Any(), gomock.Any()).Return(nil)
	m.resultRepo.EXPECT().ExistsPrize(gomock.Any(), poolID, 3000).Return(false, nil)
	// no quota fetch and no credits: a zero prize settles immediately
	m.resultRepo.EXPECT().CreatePrize(gomock.Any(), &domain.PrizeRecord{
		PoolID: poolID, ConcursoNumero: 3000, PremioTotal: 0, Distribuido: true,
	}).Return(nil)
	m.poolRepo.EXPECT().SetResultadoDezenas(gomock.Any(), poolID, drawn).Return(nil)
	m.ticketRepo.EXPECT().UpdateAcertos(gomock.Any(), ticketID, 10).Return(nil)
	m.poolRepo.EXPECT().IncrementApurated(gomock.Any(), poolID).Return(1, nil)
	m.poolRepo.EXPECT().UpdateStatus(gomock.Any(), poolID, domain.PoolStatusApurated).Return(nil)

	report, err := service.ApurateContest(context.Background(), poolID, 3000, drawn, map[int]float64{11: 6})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.PremioTotal)
	assert.Equal(t, 0, report.Resumo[11])
}

func TestApurateContestNeverPaysSubElevenTiers(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()
	ticketID := uuid.New()

	pool := &domain.Pool{ID: poolID, ConcursoNumero: 3000, ValorCota: 10, Status: domain.PoolStatusClosed}
	// 10 hits; a payout table keyed at 10 must not turn that into a prize
	ticket := domain.Ticket{ID: ticketID, PoolID: poolID,
		Dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19, 20}}

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Ticket{ticket}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).Return(&domain.ContestResult{}, nil)
	m.resultRepo.EXPECT().CreateHit(gomock.Any(), gomock.Any()).Return(nil)
	m.resultRepo.EXPECT().ExistsPrize(gomock.Any(), poolID, 3000).Return(false, nil)
	m.resultRepo.EXPECT().CreatePrize(gomock.Any(), &domain.PrizeRecord{
		PoolID: poolID, ConcursoNumero: 3000, PremioTotal: 0, Distribuido: true,
	}).Return(nil)
	m.poolRepo.EXPECT().SetResultadoDezenas(gomock.Any(), poolID, drawn).Return(nil)
	m.ticketRepo.EXPECT().UpdateAcertos(gomock.Any(), ticketID, 10).Return(nil)
	m.poolRepo.EXPECT().IncrementApurated(gomock.Any(), poolID).Return(1, nil)
	m.poolRepo.EXPECT().UpdateStatus(gomock.Any(), poolID, domain.PoolStatusApurated).Return(nil)

	report, err := service.ApurateContest(context.Background(), poolID, 3000, drawn, map[int]float64{10: 500})
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.PremioTotal)
}

func TestApurateContestSeriesStaysActiveUntilLastContest(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()
	ticketID := uuid.New()

	pool := &domain.Pool{
		ID: poolID, ConcursoNumero: 100, ConcursoFim: intPtr(102),
		ValorCota: 10, Status: domain.PoolStatusClosed,
	}
	ticket := domain.Ticket{ID: ticketID, PoolID: poolID,
		Dezenas: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19, 20}}

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Ticket{ticket}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).Return(&domain.ContestResult{}, nil)
	m.resultRepo.EXPECT().CreateHit(gomock.Any(), gomock.Any()).Return(nil)
	m.resultRepo.EXPECT().ExistsPrize(gomock.Any(), poolID, 101).Return(false, nil)
	m.resultRepo.EXPECT().CreatePrize(gomock.Any(), gomock.Any()).Return(nil)
	// series pools keep per-contest rows only; the legacy columns stay untouched
	m.poolRepo.EXPECT().IncrementApurated(gomock.Any(), poolID).Return(2, nil)

	_, err := service.ApurateContest(context.Background(), poolID, 101, drawn, nil)
	require.NoError(t, err)
}

func TestApuratePendingSkipsUnpublishedContests(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	pool := &domain.Pool{
		ID: poolID, ConcursoNumero: 200, ConcursoFim: intPtr(201),
		Status: domain.PoolStatusClosed,
	}
	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.resultRepo.EXPECT().FindContestNumbers(gomock.Any(), poolID).Return(nil, nil)
	m.resolver.EXPECT().FetchDraw(gomock.Any(), 200).Return(nil, lotofacil.ErrResultUnavailable)
	m.resolver.EXPECT().FetchDraw(gomock.Any(), 201).Return(nil, lotofacil.ErrResultUnavailable)

	report, err := service.ApuratePending(context.Background(), poolID)
	require.NoError(t, err)
	require.Len(t, report.Resultados, 2)
	assert.False(t, report.Resultados[0].Apurado)
	assert.False(t, report.Resultados[1].Apurado)
	assert.Equal(t, 200, report.Resultados[0].Concurso)
	assert.Equal(t, 201, report.Resultados[1].Concurso)
	assert.Equal(t, 0.0, report.PremioTotalGeral)
}

func TestApuratePendingSkipsRecordedContests(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	pool := &domain.Pool{
		ID: poolID, ConcursoNumero: 200, ConcursoFim: intPtr(201),
		Status: domain.PoolStatusClosed,
	}
	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.resultRepo.EXPECT().FindContestNumbers(gomock.Any(), poolID).Return([]int{200}, nil)
	m.resolver.EXPECT().FetchDraw(gomock.Any(), 201).Return(nil, lotofacil.ErrResultUnavailable)

	report, err := service.ApuratePending(context.Background(), poolID)
	require.NoError(t, err)
	require.Len(t, report.Resultados, 1)
	assert.Equal(t, 201, report.Resultados[0].Concurso)
}

func TestApuratePendingIsNoOpOnApuratedPool(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
		Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusApurated}, nil)

	report, err := service.ApuratePending(context.Background(), poolID)
	require.NoError(t, err)
	assert.Empty(t, report.Resultados)
	assert.Equal(t, 0.0, report.PremioTotalGeral)
}

func TestApuratePendingRejectsCancelledPool(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).
		Return(&domain.Pool{ID: poolID, ConcursoNumero: 3000, Status: domain.PoolStatusCancelled}, nil)

	_, err := service.ApuratePending(context.Background(), poolID)
	assert.Equal(t, ErrPoolCancelled, err)
}

func TestShareCounts(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	quotas := []domain.Quota{
		{UserID: userA, ValorPago: 20},
		{UserID: userA, ValorPago: 10},
		{UserID: userB, ValorPago: 4}, // below face value still counts as one share
	}
	shares, total := shareCounts(quotas, 10)
	assert.Equal(t, int64(3), shares[userA])
	assert.Equal(t, int64(1), shares[userB])
	assert.Equal(t, int64(4), total)
}

func TestApurateContestSingleWinnerTakesAll(t *testing.T) {
	service, m := NewMock(t)
	poolID := uuid.New()
	ticketID := uuid.New()
	winner := uuid.New()

	pool := &domain.Pool{ID: poolID, Nome: "Solo", ConcursoNumero: 3000, ValorCota: 50, Status: domain.PoolStatusClosed}
	ticket := domain.Ticket{ID: ticketID, PoolID: poolID, Dezenas: drawn}

	m.poolRepo.EXPECT().FindByID(gomock.Any(), poolID).Return(pool, nil)
	m.ticketRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Ticket{ticket}, nil)
	m.resultRepo.EXPECT().CreateResult(gomock.Any(), gomock.Any()).Return(&domain.ContestResult{}, nil)
	m.resultRepo.EXPECT().CreateHit(gomock.Any(), &domain.ContestHit{
		TicketID: ticketID, PoolID: poolID, ConcursoNumero: 3000, Acertos: 15,
	}).Return(nil)
	m.resultRepo.EXPECT().ExistsPrize(gomock.Any(), poolID, 3000).Return(false, nil)
	m.quotaRepo.EXPECT().FindByPoolID(gomock.Any(), poolID).Return([]domain.Quota{
		{PoolID: poolID, UserID: winner, ValorPago: 50},
	}, nil)
	m.wallets.EXPECT().Credit(gomock.Any(), winner, 1000.0, domain.OriginPoolPrize, poolID.String(), gomock.Any()).Return(nil)
	m.resultRepo.EXPECT().CreatePrize(gomock.Any(), &domain.PrizeRecord{
		PoolID: poolID, ConcursoNumero: 3000, PremioTotal: 1000, Distribuido: true,
	}).Return(nil)
	m.poolRepo.EXPECT().SetResultadoDezenas(gomock.Any(), poolID, drawn).Return(nil)
	m.ticketRepo.EXPECT().UpdateAcertos(gomock.Any(), ticketID, 15).Return(nil)
	m.poolRepo.EXPECT().IncrementApurated(gomock.Any(), poolID).Return(1, nil)
	m.poolRepo.EXPECT().UpdateStatus(gomock.Any(), poolID, domain.PoolStatusApurated).Return(nil)

	report, err := service.ApurateContest(context.Background(), poolID, 3000, drawn, map[int]float64{15: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, report.PremioTotal)
	assert.Equal(t, 1, report.Resumo[15])
}
