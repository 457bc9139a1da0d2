package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "bolao/docs"
	"bolao/internal/config"
	adminhandlers "bolao/internal/handlers/admin"
	authhandlers "bolao/internal/handlers/auth"
	paymenthandlers "bolao/internal/handlers/payments"
	poolhandlers "bolao/internal/handlers/pools"
	profilehandlers "bolao/internal/handlers/profile"
	quotahandlers "bolao/internal/handlers/quotas"
	wallethandlers "bolao/internal/handlers/wallet"
	"bolao/internal/service"
	"bolao/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PoolHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
	GetApuration(w http.ResponseWriter, r *http.Request)
	GetHits(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreatePool(w http.ResponseWriter, r *http.Request)
	UpdatePool(w http.ResponseWriter, r *http.Request)
	DeletePool(w http.ResponseWriter, r *http.Request)
	ClosePool(w http.ResponseWriter, r *http.Request)
	CancelPool(w http.ResponseWriter, r *http.Request)
	AddTickets(w http.ResponseWriter, r *http.Request)
	RemoveTicket(w http.ResponseWriter, r *http.Request)
	Apurate(w http.ResponseWriter, r *http.Request)
	ApurateAuto(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type QuotaHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateCharge(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PoolHandler    PoolHandler
	AdminHandler   AdminHandler
	ProfileHandler ProfileHandler
	WalletHandler  WalletHandler
	QuotaHandler   QuotaHandler
	PaymentHandler PaymentHandler

	adminIDs   []string
	cronSecret string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler: authhandlers.New(s.AuthService),
		PoolHandler: poolhandlers.New(s.PoolService, s.ApurationService),
		AdminHandler: adminhandlers.New(
			s.PoolService, s.ApurationService, s.QuotaService, s.WalletService, s.PaymentService,
		),
		ProfileHandler: profilehandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		QuotaHandler:   quotahandlers.New(s.QuotaService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		adminIDs:       cfg.AdminIDs,
		cronSecret:     cfg.CronSecret,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/registrar", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/boloes", func(r chi.Router) {
			r.Get("/", h.PoolHandler.List)
			r.Get("/{id}", h.PoolHandler.Get)
			r.Get("/{id}/jogos", h.PoolHandler.GetTickets)
			r.Get("/{id}/apuracao", h.PoolHandler.GetApuration)
			r.Get("/{id}/acertos", h.PoolHandler.GetHits)
		})

		// gateway callback comes unauthenticated
		r.Post("/pagamentos/webhook", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/perfil", func(r chi.Router) {
				r.Get("/", h.ProfileHandler.Get)
				r.Put("/", h.ProfileHandler.Update)
			})
			r.Route("/carteira", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transacoes", h.WalletHandler.GetTransactions)
				r.Get("/resumo", h.WalletHandler.GetSummary)
			})
			r.Route("/cotas", func(r chi.Router) {
				r.Post("/comprar", h.QuotaHandler.Purchase)
				r.Get("/minhas", h.QuotaHandler.ListMine)
			})
			r.Route("/pagamentos", func(r chi.Router) {
				r.Post("/criar-pix", h.PaymentHandler.CreateCharge)
				r.Get("/meus", h.PaymentHandler.ListMine)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.adminIDs))

				r.Get("/stats", h.AdminHandler.Stats)
				r.Route("/boloes", func(r chi.Router) {
					r.Post("/", h.AdminHandler.CreatePool)
					r.Put("/{id}", h.AdminHandler.UpdatePool)
					r.Delete("/{id}", h.AdminHandler.DeletePool)
					r.Post("/{id}/fechar", h.AdminHandler.ClosePool)
					r.Post("/{id}/cancelar", h.AdminHandler.CancelPool)
					r.Post("/{id}/jogos", h.AdminHandler.AddTickets)
					r.Delete("/{id}/jogos/{jogoID}", h.AdminHandler.RemoveTicket)
					r.Post("/{id}/apurar", h.AdminHandler.Apurate)
					r.Post("/{id}/apurar-automatico", h.AdminHandler.ApurateAuto)
				})
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.CronSecretMiddleware(h.cronSecret))
			r.Post("/cron/apurar", h.AdminHandler.Sweep)
		})
	})

	return r
}
