package resultrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"bolao/internal/domain"
	"bolao/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateResult(t *testing.T) {
	repo, mock := NewMock(t)

	poolID := uuid.New()
	resultID := uuid.New()
	now := time.Now()
	dezenas := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	query := regexp.QuoteMeta(`
        INSERT INTO resultados_concurso (bolao_id, concurso_numero, dezenas)
        VALUES ($1, $2, $3)
        RETURNING id, bolao_id, concurso_numero, dezenas, created_at
    `)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		expectErr bool
	}{
		{
			name: "Successfully records the drawn numbers",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "bolao_id", "concurso_numero", "dezenas", "created_at"}).
					AddRow(resultID, poolID, 3200, dezenas, now)
				mock.ExpectQuery(query).
					WithArgs(poolID, 3200, dezenas).
					WillReturnRows(rows)
			},
		},
		{
			name: "Losing the insert race returns ErrUniqueViolation",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(poolID, 3200, dezenas).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr:   pg.ErrUniqueViolation,
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(poolID, 3200, dezenas).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.CreateResult(context.Background(), &domain.ContestResult{
				PoolID:         poolID,
				ConcursoNumero: 3200,
				Dezenas:        dezenas,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, resultID, created.ID)
				assert.Equal(t, 3200, created.ConcursoNumero)
				assert.Equal(t, dezenas, created.Dezenas)
			}
		})
	}
}

func TestRepository_FindContestNumbers(t *testing.T) {
	repo, mock := NewMock(t)

	poolID := uuid.New()
	query := regexp.QuoteMeta(`
        SELECT concurso_numero
        FROM resultados_concurso
        WHERE bolao_id = $1
        ORDER BY concurso_numero ASC
    `)

	mock.ExpectQuery(query).
		WithArgs(poolID).
		WillReturnRows(pgxmock.NewRows([]string{"concurso_numero"}).
			AddRow(3200).
			AddRow(3201))

	numbers, err := repo.FindContestNumbers(context.Background(), poolID)
	assert.NoError(t, err)
	assert.Equal(t, []int{3200, 3201}, numbers)
}

func TestRepository_CreateHit(t *testing.T) {
	repo, mock := NewMock(t)

	ticketID := uuid.New()
	poolID := uuid.New()
	query := regexp.QuoteMeta(`
        INSERT INTO acertos_concurso (jogo_id, bolao_id, concurso_numero, acertos)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (jogo_id, concurso_numero) DO NOTHING
    `)

	mock.ExpectExec(query).
		WithArgs(ticketID, poolID, 3200, 14).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateHit(context.Background(), &domain.ContestHit{
		TicketID:       ticketID,
		PoolID:         poolID,
		ConcursoNumero: 3200,
		Acertos:        14,
	})
	assert.NoError(t, err)
}

func TestRepository_CreatePrize(t *testing.T) {
	repo, mock := NewMock(t)

	poolID := uuid.New()
	query := regexp.QuoteMeta(`
        INSERT INTO premiacoes_bolao (bolao_id, concurso_numero, premio_total, distribuido)
        VALUES ($1, $2, $3, $4)
    `)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Successfully seals the contest",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(poolID, 3200, 1500.0, true).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate seal returns ErrUniqueViolation",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(poolID, 3200, 1500.0, true).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: pg.ErrUniqueViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.CreatePrize(context.Background(), &domain.PrizeRecord{
				PoolID:         poolID,
				ConcursoNumero: 3200,
				PremioTotal:    1500.0,
				Distribuido:    true,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ExistsPrize(t *testing.T) {
	repo, mock := NewMock(t)

	poolID := uuid.New()
	query := regexp.QuoteMeta(`
        SELECT EXISTS (
            SELECT 1 FROM premiacoes_bolao WHERE bolao_id = $1 AND concurso_numero = $2
        )
    `)

	mock.ExpectQuery(query).
		WithArgs(poolID, 3200).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsPrize(context.Background(), poolID, 3200)
	assert.NoError(t, err)
	assert.True(t, exists)
}
