package ticketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

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

func TestRepository_FindByPoolID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	poolID := uuid.New()
	ticketID := uuid.New()
	dezenas := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	query := regexp.QuoteMeta(`
        SELECT id, bolao_id, dezenas, acertos, created_at
        FROM jogos_bolao
        WHERE bolao_id = $1
        ORDER BY created_at ASC
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns the pool tickets",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "bolao_id", "dezenas", "acertos", "created_at"}).
					AddRow(ticketID, poolID, dezenas, nil, time.Now())
				mock.ExpectQuery(query).
					WithArgs(poolID).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(poolID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			tickets, err := repo.FindByPoolID(context.Background(), poolID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, tickets, tt.count)
				assert.Equal(t, dezenas, tickets[0].Dezenas)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	poolID := uuid.New()
	first := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	second := []int32{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	query := regexp.QuoteMeta(`
        INSERT INTO jogos_bolao (bolao_id, dezenas)
        VALUES ($1, $2)
        RETURNING id, bolao_id, dezenas, acertos, created_at
    `)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})

	mock.ExpectQuery(query).
		WithArgs(poolID, first).
		WillReturnRows(pgxmock.NewRows([]string{"id", "bolao_id", "dezenas", "acertos", "created_at"}).
			AddRow(uuid.New(), poolID, first, nil, time.Now()))
	mock.ExpectQuery(query).
		WithArgs(poolID, second).
		WillReturnRows(pgxmock.NewRows([]string{"id", "bolao_id", "dezenas", "acertos", "created_at"}).
			AddRow(uuid.New(), poolID, second, nil, time.Now()))

	tickets, err := repo.CreateBatch(context.Background(), poolID, [][]int32{first, second})
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	poolID := uuid.New()
	dezenas := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	query := regexp.QuoteMeta(`
        INSERT INTO jogos_bolao (bolao_id, dezenas)
        VALUES ($1, $2)
        RETURNING id, bolao_id, dezenas, acertos, created_at
    `)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})

	mock.ExpectQuery(query).
		WithArgs(poolID, dezenas).
		WillReturnError(errors.New("db error"))

	tickets, err := repo.CreateBatch(context.Background(), poolID, [][]int32{dezenas})
	assert.Error(t, err)
	assert.Nil(t, tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	poolID := uuid.New()
	ticketID := uuid.New()
	query := regexp.QuoteMeta(`
        DELETE FROM jogos_bolao
        WHERE id = $1 AND bolao_id = $2
    `)

	mock.ExpectExec(query).
		WithArgs(ticketID, poolID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), poolID, ticketID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAcertos(t *testing.T) {
	repo, mock, _ := NewMock(t)

	ticketID := uuid.New()
	query := regexp.QuoteMeta(`
        UPDATE jogos_bolao
        SET acertos = $1
        WHERE id = $2
    `)

	mock.ExpectExec(query).
		WithArgs(12, ticketID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAcertos(context.Background(), ticketID, 12)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByPoolID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	poolID := uuid.New()
	query := regexp.QuoteMeta(`
        SELECT COUNT(*)
        FROM jogos_bolao
        WHERE bolao_id = $1
    `)

	mock.ExpectQuery(query).
		WithArgs(poolID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByPoolID(context.Background(), poolID)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
