package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bolao/internal/config"
)

type Apurator interface {
	ApurateActivePools(ctx context.Context) error
}

type PoolCloser interface {
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

// Service runs the periodic housekeeping: close pools past their sale
// deadline and apurate whatever official results have been published. The
// same sweep is also reachable through the cron HTTP endpoint for external
// schedulers.
type Service struct {
	cron     *cron.Cron
	apurator Apurator
	closer   PoolCloser
	spec     string
	onBoot   bool
}

func New(cfg *config.Config, apurator Apurator, closer PoolCloser) *Service {
	return &Service{
		cron:     cron.New(),
		apurator: apurator,
		closer:   closer,
		spec:     cfg.SweepSpec,
		onBoot:   cfg.SweepOnBoot,
	}
}

func (s *Service) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	zap.L().Info("sweeper started", zap.String("spec", s.spec))

	if s.onBoot {
		go s.sweep(ctx)
	}

	go func() {
		<-ctx.Done()
		stopCtx := s.cron.Stop()
		<-stopCtx.Done()
		zap.L().Info("sweeper stopped")
	}()

	return nil
}

func (s *Service) sweep(ctx context.Context) {
	closed, err := s.closer.CloseExpired(ctx, time.Now())
	if err != nil {
		zap.L().Error("failed to close expired pools", zap.Error(err))
	} else if closed > 0 {
		zap.L().Info("expired pools closed", zap.Int("count", closed))
	}

	if err := s.apurator.ApurateActivePools(ctx); err != nil {
		zap.L().Error("sweep failed", zap.Error(err))
	}
}
