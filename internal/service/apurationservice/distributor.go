package apurationservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bolao/internal/domain"
)

// distributePrize settles one contest's prize across the pool's quota
// holders and returns the prize total it settled. The premiacoes_bolao row is
// written last, after every credit went through, so a crash mid-distribution
// leaves the contest retriable rather than half-settled and sealed.
func (s *Service) distributePrize(ctx context.Context, pool *domain.Pool, concurso int, hitCounts map[uuid.UUID]int, premiacoes map[int]float64) (float64, error) {
	exists, err := s.resultRepo.ExistsPrize(ctx, pool.ID, concurso)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	premioTotal := decimal.Zero
	for _, hits := range hitCounts {
		// tiers below 11 hits never pay, whatever the supplied table says
		if hits < 11 {
			continue
		}
		if valor, ok := premiacoes[hits]; ok && valor > 0 {
			premioTotal = premioTotal.Add(decimal.NewFromFloat(valor))
		}
	}
	premioTotal = premioTotal.Round(2)

	if premioTotal.IsZero() {
		return 0, s.resultRepo.CreatePrize(ctx, &domain.PrizeRecord{
			PoolID:         pool.ID,
			ConcursoNumero: concurso,
			PremioTotal:    0,
			Distribuido:    true,
		})
	}

	quotas, err := s.quotaRepo.FindByPoolID(ctx, pool.ID)
	if err != nil {
		return 0, err
	}
	total, _ := premioTotal.Float64()
	if len(quotas) == 0 {
		zap.L().Warn("prize won by pool without quota holders",
			zap.String("poolID", pool.ID.String()), zap.Int("concurso", concurso))
		return total, s.resultRepo.CreatePrize(ctx, &domain.PrizeRecord{
			PoolID:         pool.ID,
			ConcursoNumero: concurso,
			PremioTotal:    total,
			Distribuido:    false,
		})
	}

	userShares, totalShares := shareCounts(quotas, pool.ValorCota)

	userIDs := make([]uuid.UUID, 0, len(userShares))
	for userID := range userShares {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		return userIDs[i].String() < userIDs[j].String()
	})

	totalDec := decimal.NewFromInt(totalShares)
	descricao := fmt.Sprintf("Prêmio do bolão %s, concurso %d", pool.Nome, concurso)
	for _, userID := range userIDs {
		amount := premioTotal.
			Mul(decimal.NewFromInt(userShares[userID])).
			Div(totalDec).
			Round(2)
		if amount.IsZero() {
			continue
		}
		valor, _ := amount.Float64()
		err := s.wallets.Credit(ctx, userID, valor, domain.OriginPoolPrize, pool.ID.String(), descricao)
		if err != nil {
			zap.L().Warn("prize credit skipped",
				zap.String("userID", userID.String()),
				zap.String("poolID", pool.ID.String()),
				zap.Error(err))
		}
	}

	return total, s.resultRepo.CreatePrize(ctx, &domain.PrizeRecord{
		PoolID:         pool.ID,
		ConcursoNumero: concurso,
		PremioTotal:    total,
		Distribuido:    true,
	})
}

// shareCounts derives each buyer's share count from what they actually paid.
// A quota bought below face value still counts as one share, so early buyers
// of discounted quotas are never zeroed out.
func shareCounts(quotas []domain.Quota, valorCota float64) (map[uuid.UUID]int64, int64) {
	cota := decimal.NewFromFloat(valorCota)
	userShares := make(map[uuid.UUID]int64)
	var totalShares int64
	for _, q := range quotas {
		shares := int64(1)
		if cota.IsPositive() {
			shares = decimal.NewFromFloat(q.ValorPago).Div(cota).Round(0).IntPart()
			if shares < 1 {
				shares = 1
			}
		}
		userShares[q.UserID] += shares
		totalShares += shares
	}
	return userShares, totalShares
}
