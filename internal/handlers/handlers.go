package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/haruharu/groveback/docs"
	authhandlers "github.com/haruharu/groveback/internal/handlers/auth"
	checkinhandlers "github.com/haruharu/groveback/internal/handlers/checkin"
	coinhandlers "github.com/haruharu/groveback/internal/handlers/coins"
	growthhandlers "github.com/haruharu/groveback/internal/handlers/growth"
	loghandlers "github.com/haruharu/groveback/internal/handlers/logs"
	producthandlers "github.com/haruharu/groveback/internal/handlers/products"
	reporthandlers "github.com/haruharu/groveback/internal/handlers/reports"
	traithandlers "github.com/haruharu/groveback/internal/handlers/traits"
	"github.com/haruharu/groveback/internal/metrics"
	"github.com/haruharu/groveback/internal/service"
	"github.com/haruharu/groveback/pkg/auth"
	ratelimit "github.com/haruharu/groveback/pkg/middleware"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type CoinHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type GrowthHandler interface {
	GetGrowthTree(w http.ResponseWriter, r *http.Request)
	PurchaseWateringCan(w http.ResponseWriter, r *http.Request)
}

type LogHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type CheckinHandler interface {
	Checkin(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	LoginWithCard(w http.ResponseWriter, r *http.Request)
	RegisterCard(w http.ResponseWriter, r *http.Request)
	ListCards(w http.ResponseWriter, r *http.Request)
	UpdateCard(w http.ResponseWriter, r *http.Request)
	DeleteCard(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type TraitHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CoinHandler    CoinHandler
	GrowthHandler  GrowthHandler
	LogHandler     LogHandler
	CheckinHandler CheckinHandler
	ProductHandler ProductHandler
	ReportHandler  ReportHandler
	TraitHandler   TraitHandler

	rateLimiter *ratelimit.RateLimiter
}

func New(s *service.Services, rateLimitPerMinute int) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CoinHandler:    coinhandlers.New(s.CoinService),
		GrowthHandler:  growthhandlers.New(s.GrowthService),
		LogHandler:     loghandlers.New(s.DailyLogService),
		CheckinHandler: checkinhandlers.New(s.CheckinService),
		ProductHandler: producthandlers.New(s.ProductService),
		ReportHandler:  reporthandlers.New(s.ReportService),
		TraitHandler:   traithandlers.New(s.TraitService),

		rateLimiter: ratelimit.NewRateLimiter(rateLimitPerMinute),
	}
}

// Close releases handler-owned resources, currently the rate limiter's
// eviction goroutine.
func (h *Handlers) Close() {
	h.rateLimiter.Close()
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
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.With(h.rateLimiter.Middleware).Post("/checkin/card-login", h.CheckinHandler.LoginWithCard)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/auth/me", h.AuthHandler.GetProfile)
			r.Patch("/auth/me", h.AuthHandler.UpdateProfile)

			r.Route("/coins", func(r chi.Router) {
				r.Get("/balance", h.CoinHandler.GetBalance)
				r.Get("/history", h.CoinHandler.GetHistory)
			})

			r.Route("/growth", func(r chi.Router) {
				r.Get("/tree", h.GrowthHandler.GetGrowthTree)
				r.Post("/watering-can", h.GrowthHandler.PurchaseWateringCan)
			})

			r.Route("/logs", func(r chi.Router) {
				r.Post("/", h.LogHandler.Upsert)
				r.Get("/", h.LogHandler.List)
				r.Get("/stats", h.LogHandler.GetStats)
				r.Get("/{date}", h.LogHandler.GetByDate)
			})

			r.Route("/checkin", func(r chi.Router) {
				r.With(h.rateLimiter.Middleware).Post("/", h.CheckinHandler.Checkin)
				r.Get("/status", h.CheckinHandler.GetStatus)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", h.CheckinHandler.RegisterCard)
				r.Get("/", h.CheckinHandler.ListCards)
				r.Patch("/{cardID}", h.CheckinHandler.UpdateCard)
				r.Delete("/{cardID}", h.CheckinHandler.DeleteCard)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ProductHandler.List)
				r.Post("/{productID}/purchase", h.ProductHandler.Purchase)
			})

			r.Route("/traits", func(r chi.Router) {
				r.Get("/", h.TraitHandler.Get)
				r.Put("/", h.TraitHandler.Upsert)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", h.ReportHandler.Request)
				r.Get("/{year}/{month}", h.ReportHandler.Get)
			})
		})
	})

	return r
}
