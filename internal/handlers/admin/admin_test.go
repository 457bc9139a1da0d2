package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/apurationservice"
	"bolao/internal/service/poolservice"
)

type mocks struct {
	poolService    *MockPoolService
	apurator       *MockApurator
	quotaService   *MockQuotaService
	walletService  *MockWalletService
	paymentService *MockPaymentService
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		poolService:    NewMockPoolService(ctrl),
		apurator:       NewMockApurator(ctrl),
		quotaService:   NewMockQuotaService(ctrl),
		walletService:  NewMockWalletService(ctrl),
		paymentService: NewMockPaymentService(ctrl),
	}
	handler := New(m.poolService, m.apurator, m.quotaService, m.walletService, m.paymentService)
	defer ctrl.Finish()
	return handler, m
}

func requestWithPoolID(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreatePoolHandler(t *testing.T) {
	handler, m := NewMock(t)

	poolID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successfully creates the pool",
			body: `{"nome":"Bolão da firma","concurso_numero":3200,"total_cotas":20,"valor_cota":10}`,
			prepareMock: func() {
				m.poolService.EXPECT().
					CreatePool(gomock.Any(), gomock.Any()).
					Return(&domain.Pool{
						ID:             poolID,
						Nome:           "Bolão da firma",
						ConcursoNumero: 3200,
						TotalCotas:     20,
						ValorCota:      10,
						Status:         domain.PoolStatusOpen,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Open pool already covers the contest",
			body: `{"nome":"Bolão da firma","concurso_numero":3200,"total_cotas":20,"valor_cota":10}`,
			prepareMock: func() {
				m.poolService.EXPECT().
					CreatePool(gomock.Any(), gomock.Any()).
					Return(nil, poolservice.ErrDuplicateContest)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invalid contest range",
			body: `{"nome":"Bolão da firma","concurso_numero":3200,"concurso_fim":3100,"total_cotas":20,"valor_cota":10}`,
			prepareMock: func() {
				m.poolService.EXPECT().
					CreatePool(gomock.Any(), gomock.Any()).
					Return(nil, poolservice.ErrInvalidContest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/boloes", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreatePool(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeletePoolHandler(t *testing.T) {
	handler, m := NewMock(t)

	poolID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successfully deletes the pool",
			prepareMock: func() {
				m.poolService.EXPECT().DeletePool(gomock.Any(), poolID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pool has sold quotas",
			prepareMock: func() {
				m.poolService.EXPECT().DeletePool(gomock.Any(), poolID).Return(poolservice.ErrPoolHasQuotas)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Pool not found",
			prepareMock: func() {
				m.poolService.EXPECT().DeletePool(gomock.Any(), poolID).Return(poolservice.ErrPoolNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := requestWithPoolID("DELETE", "/api/admin/boloes/"+poolID.String(), poolID.String(), nil)
			rr := httptest.NewRecorder()

			handler.DeletePool(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApurateHandler(t *testing.T) {
	handler, m := NewMock(t)

	poolID := uuid.New()
	body := `{"concurso_numero":3200,"dezenas":[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15],"premiacoes":{"15":1000}}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successfully apurates the contest",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(&apurationservice.ContestReport{Concurso: 3200, PremioTotal: 1000}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Contest already apurated",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(nil, apurationservice.ErrContestAlreadyApurated)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Cancelled pool",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(nil, apurationservice.ErrPoolCancelled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Contest outside the pool's range",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(nil, apurationservice.ErrContestOutOfRange)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Pool not found",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(nil, apurationservice.ErrPoolNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Pool without games",
			prepareMock: func() {
				m.apurator.EXPECT().
					ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
					Return(nil, apurationservice.ErrNoTickets)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := requestWithPoolID("POST", "/api/admin/boloes/"+poolID.String()+"/apurar", poolID.String(), []byte(body))
			rr := httptest.NewRecorder()

			handler.Apurate(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestApurateHandlerReturnsReport(t *testing.T) {
	handler, m := NewMock(t)

	poolID := uuid.New()
	ticketID := uuid.New()
	body := `{"concurso_numero":3200,"dezenas":[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15],"premiacoes":{"11":30}}`

	m.apurator.EXPECT().
		ApurateContest(gomock.Any(), poolID, 3200, gomock.Any(), gomock.Any()).
		Return(&apurationservice.ContestReport{
			Concurso: 3200,
			Dezenas:  []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			Jogos: []apurationservice.TicketScore{
				{TicketID: ticketID, Acertos: 11},
			},
			Resumo:      map[int]int{11: 1, 12: 0, 13: 0, 14: 0, 15: 0},
			PremioTotal: 30,
		}, nil)

	req := requestWithPoolID("POST", "/api/admin/boloes/"+poolID.String()+"/apurar", poolID.String(), []byte(body))
	rr := httptest.NewRecorder()

	handler.Apurate(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var report apurationservice.ContestReport
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
	assert.Equal(t, 3200, report.Concurso)
	assert.Equal(t, 30.0, report.PremioTotal)
	assert.Len(t, report.Jogos, 1)
	assert.Equal(t, 1, report.Resumo[11])
}

func TestApurateAutoHandler(t *testing.T) {
	handler, m := NewMock(t)

	poolID := uuid.New()

	t.Run("Returns the per-contest outcomes and the aggregate prize", func(t *testing.T) {
		m.apurator.EXPECT().
			ApuratePending(gomock.Any(), poolID).
			Return(&apurationservice.PendingReport{
				Resultados: []apurationservice.ContestOutcome{
					{Concurso: 3200, Apurado: true, PremioTotal: 45.5},
					{Concurso: 3201, Apurado: false, Mensagem: "resultado ainda não publicado"},
				},
				PremioTotalGeral: 45.5,
			}, nil)

		req := requestWithPoolID("POST", "/api/admin/boloes/"+poolID.String()+"/apurar-automatico", poolID.String(), nil)
		rr := httptest.NewRecorder()

		handler.ApurateAuto(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var report apurationservice.PendingReport
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
		assert.Len(t, report.Resultados, 2)
		assert.Equal(t, 45.5, report.PremioTotalGeral)
	})

	t.Run("Nothing pending yields an empty report", func(t *testing.T) {
		m.apurator.EXPECT().
			ApuratePending(gomock.Any(), poolID).
			Return(&apurationservice.PendingReport{Resultados: []apurationservice.ContestOutcome{}}, nil)

		req := requestWithPoolID("POST", "/api/admin/boloes/"+poolID.String()+"/apurar-automatico", poolID.String(), nil)
		rr := httptest.NewRecorder()

		handler.ApurateAuto(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"resultados":[],"premio_total_geral":0}`, rr.Body.String())
	})

	t.Run("Cancelled pool", func(t *testing.T) {
		m.apurator.EXPECT().
			ApuratePending(gomock.Any(), poolID).
			Return(nil, apurationservice.ErrPoolCancelled)

		req := requestWithPoolID("POST", "/api/admin/boloes/"+poolID.String()+"/apurar-automatico", poolID.String(), nil)
		rr := httptest.NewRecorder()

		handler.ApurateAuto(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestStatsHandler(t *testing.T) {
	handler, m := NewMock(t)

	m.poolService.EXPECT().Stats(gomock.Any()).Return(map[string]int{
		domain.PoolStatusOpen:     3,
		domain.PoolStatusApurated: 7,
	}, nil)
	m.quotaService.EXPECT().Totals(gomock.Any()).Return(140, 2100.0, nil)
	m.walletService.EXPECT().TotalBalance(gomock.Any()).Return(980.5, nil)
	m.paymentService.EXPECT().CountPending(gomock.Any()).Return(2, nil)

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	rr := httptest.NewRecorder()

	handler.Stats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.AdminStatsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 140, resp.CotasVendidas)
	assert.Equal(t, 2100.0, resp.ValorArrecadado)
	assert.Equal(t, 980.5, resp.SaldoEmCarteiras)
	assert.Equal(t, 2, resp.PagamentosPendente)
	assert.Equal(t, 3, resp.BoloesPorStatus[domain.PoolStatusOpen])
}

func TestSweepHandler(t *testing.T) {
	handler, m := NewMock(t)

	m.apurator.EXPECT().ApurateActivePools(gomock.Any()).Return(nil)

	req := httptest.NewRequest("POST", "/api/cron/apurar", nil)
	rr := httptest.NewRecorder()

	handler.Sweep(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
