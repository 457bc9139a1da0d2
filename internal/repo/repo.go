package repo

import (
	"bolao/internal/pg"
	paymentrepo "bolao/internal/repo/payment-repo"
	poolrepo "bolao/internal/repo/pool-repo"
	quotarepo "bolao/internal/repo/quota-repo"
	resultrepo "bolao/internal/repo/result-repo"
	ticketrepo "bolao/internal/repo/ticket-repo"
	userrepo "bolao/internal/repo/user-repo"
	walletrepo "bolao/internal/repo/wallet-repo"
)

// Repositories keeps the concrete repos; several services share the same repo
// through different interface subsets, so the narrowing happens at wiring.
type Repositories struct {
	UserRepo    *userrepo.Repository
	PoolRepo    *poolrepo.Repository
	TicketRepo  *ticketrepo.Repository
	QuotaRepo   *quotarepo.Repository
	ResultRepo  *resultrepo.Repository
	WalletRepo  *walletrepo.Repository
	PaymentRepo *paymentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		PoolRepo:    poolrepo.New(conn, txManager),
		TicketRepo:  ticketrepo.New(conn, txManager),
		QuotaRepo:   quotarepo.New(conn),
		ResultRepo:  resultrepo.New(conn),
		WalletRepo:  walletrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn),
	}
}
