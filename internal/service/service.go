package service

import (
	authhandlers "github.com/haruharu/groveback/internal/handlers/auth"
	checkinhandlers "github.com/haruharu/groveback/internal/handlers/checkin"
	coinhandlers "github.com/haruharu/groveback/internal/handlers/coins"
	growthhandlers "github.com/haruharu/groveback/internal/handlers/growth"
	loghandlers "github.com/haruharu/groveback/internal/handlers/logs"
	producthandlers "github.com/haruharu/groveback/internal/handlers/products"
	reporthandlers "github.com/haruharu/groveback/internal/handlers/reports"
	traithandlers "github.com/haruharu/groveback/internal/handlers/traits"

	pkgauth "github.com/haruharu/groveback/pkg/auth"

	"github.com/haruharu/groveback/internal/pg"
	"github.com/haruharu/groveback/internal/repo"
	"github.com/haruharu/groveback/internal/service/authservice"
	"github.com/haruharu/groveback/internal/service/checkinservice"
	"github.com/haruharu/groveback/internal/service/dailylogservice"
	"github.com/haruharu/groveback/internal/service/growthservice"
	"github.com/haruharu/groveback/internal/service/ledgerservice"
	"github.com/haruharu/groveback/internal/service/productservice"
	"github.com/haruharu/groveback/internal/service/reportservice"
	"github.com/haruharu/groveback/internal/service/traitservice"
)

type Services struct {
	AuthService     authhandlers.Service
	CoinService     coinhandlers.Service
	GrowthService   growthhandlers.Service
	DailyLogService loghandlers.Service
	CheckinService  checkinhandlers.Service
	ProductService  producthandlers.Service
	ReportService   reporthandlers.Service
	TraitService    traithandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.LedgerRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	growthService := growthservice.New(repo.UserRepo, repo.LedgerRepo, ledgerService)
	dailyLogService := dailylogservice.New(repo.DailyLogRepo)
	checkinService := checkinservice.New(repo.UserRepo, repo.NfcCardRepo, ledgerService, authService)
	productService := productservice.New(repo.ProductRepo, ledgerService)
	reportService := reportservice.New(repo.ReportRepo)
	traitService := traitservice.New(repo.TraitRepo)

	return &Services{
		AuthService:     authService,
		CoinService:     ledgerService,
		GrowthService:   growthService,
		DailyLogService: dailyLogService,
		CheckinService:  checkinService,
		ProductService:  productService,
		ReportService:   reportService,
		TraitService:    traitService,
	}
}
