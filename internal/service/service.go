package service

import (
	"bolao/internal/config"
	"bolao/internal/lotofacil"
	"bolao/internal/repo"
	"bolao/internal/service/apurationservice"
	"bolao/internal/service/authservice"
	"bolao/internal/service/paymentservice"
	"bolao/internal/service/poolservice"
	"bolao/internal/service/quotaservice"
	"bolao/internal/service/walletservice"
	pkgauth "bolao/pkg/auth"
	"bolao/pkg/clients"
)

type Services struct {
	AuthService      *authservice.Service
	PoolService      *poolservice.Service
	ApurationService *apurationservice.Service
	WalletService    *walletservice.Service
	QuotaService     *quotaservice.Service
	PaymentService   *paymentservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, httpClient clients.HTTPClientI) *Services {
	resolver := lotofacil.New(cfg.LotteryAPI, httpClient)

	walletService := walletservice.New(repo.WalletRepo)
	poolService := poolservice.New(repo.PoolRepo, repo.TicketRepo, repo.QuotaRepo)
	apurationService := apurationservice.New(
		repo.PoolRepo, repo.TicketRepo, repo.ResultRepo, repo.QuotaRepo, walletService, resolver,
	)
	quotaService := quotaservice.New(repo.QuotaRepo)
	paymentService := paymentservice.New(repo.PaymentRepo, walletService)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		PoolService:      poolService,
		ApurationService: apurationService,
		WalletService:    walletService,
		QuotaService:     quotaService,
		PaymentService:   paymentService,
	}
}
