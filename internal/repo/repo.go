package repo

import (
	"github.com/haruharu/groveback/internal/pg"
	dailylogrepo "github.com/haruharu/groveback/internal/repo/dailylog-repo"
	ledgerrepo "github.com/haruharu/groveback/internal/repo/ledger-repo"
	nfccardrepo "github.com/haruharu/groveback/internal/repo/nfccard-repo"
	productrepo "github.com/haruharu/groveback/internal/repo/product-repo"
	reportrepo "github.com/haruharu/groveback/internal/repo/report-repo"
	traitrepo "github.com/haruharu/groveback/internal/repo/trait-repo"
	userrepo "github.com/haruharu/groveback/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	DailyLogRepo *dailylogrepo.Repository
	NfcCardRepo  *nfccardrepo.Repository
	ProductRepo  *productrepo.Repository
	ReportRepo   *reportrepo.Repository
	TraitRepo    *traitrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		DailyLogRepo: dailylogrepo.New(conn),
		NfcCardRepo:  nfccardrepo.New(conn),
		ProductRepo:  productrepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
		TraitRepo:    traitrepo.New(conn),
	}
}
