package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bolao/internal/domain"
	"bolao/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	userID := uuid.New()
	walletID := uuid.New()
	query := regexp.QuoteMeta(`
        SELECT id, usuario_id, saldo_disponivel, saldo_bloqueado
        FROM carteira
        WHERE usuario_id = $1
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Valid userID returns wallet",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "usuario_id", "saldo_disponivel", "saldo_bloqueado"}).
					AddRow(walletID, userID, 100.0, 0.0)
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			result: &domain.Wallet{
				ID:              walletID,
				UserID:          userID,
				SaldoDisponivel: 100.0,
				SaldoBloqueado:  0.0,
			},
		},
		{
			name: "Non-existing userID returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	userID := uuid.New()
	walletID := uuid.New()
	query := regexp.QuoteMeta(`
        INSERT INTO carteira (usuario_id, saldo_disponivel, saldo_bloqueado)
        VALUES ($1, 0, 0)
        RETURNING id, usuario_id, saldo_disponivel, saldo_bloqueado
    `)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		expectErr bool
	}{
		{
			name: "Successfully creates wallet",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "usuario_id", "saldo_disponivel", "saldo_bloqueado"}).
					AddRow(walletID, userID, 0.0, 0.0)
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(rows)
			},
		},
		{
			name: "Second wallet for the same user returns ErrUniqueViolation",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr:   pg.ErrUniqueViolation,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, walletID, result.ID)
				assert.Equal(t, userID, result.UserID)
			}
		})
	}
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock, _ := NewMock(t)

	userID := uuid.New()
	query := regexp.QuoteMeta(`
        INSERT INTO transacoes (usuario_id, tipo, valor, origem, referencia_id, descricao,
                                saldo_anterior, saldo_posterior, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `)

	mock.ExpectExec(query).
		WithArgs(userID, domain.TransactionCredit, 50.0, domain.OriginPix, "SIM-1", "Depósito via Pix",
			100.0, 150.0, domain.TransactionConfirmed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateTransaction(context.Background(), &domain.Transaction{
		UserID:         userID,
		Tipo:           domain.TransactionCredit,
		Valor:          50.0,
		Origem:         domain.OriginPix,
		ReferenciaID:   "SIM-1",
		Descricao:      "Depósito via Pix",
		SaldoAnterior:  100.0,
		SaldoPosterior: 150.0,
		Status:         domain.TransactionConfirmed,
	})
	assert.NoError(t, err)
}

func TestRepository_SumByOrigin(t *testing.T) {
	repo, mock, _ := NewMock(t)

	userID := uuid.New()
	query := regexp.QuoteMeta(`
        SELECT origem,
               COALESCE(SUM(CASE WHEN tipo = $2 THEN valor ELSE -valor END), 0)
        FROM transacoes
        WHERE usuario_id = $1 AND status = $3
        GROUP BY origem
    `)

	mock.ExpectQuery(query).
		WithArgs(userID, domain.TransactionCredit, domain.TransactionConfirmed).
		WillReturnRows(pgxmock.NewRows([]string{"origem", "coalesce"}).
			AddRow(domain.OriginPix, 200.0).
			AddRow(domain.OriginQuotaPurchase, -80.0))

	sums, err := repo.SumByOrigin(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{
		domain.OriginPix:           200.0,
		domain.OriginQuotaPurchase: -80.0,
	}, sums)
}

func TestRepository_Totals(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT COALESCE(SUM(saldo_disponivel), 0)
        FROM carteira
    `)

	mock.ExpectQuery(query).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1234.5))

	total, err := repo.Totals(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1234.5, total)
}
