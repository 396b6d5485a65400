package repo

import (
	"github.com/viwallet/viwallet/internal/pg"
	auditrepo "github.com/viwallet/viwallet/internal/repo/audit-repo"
	cardrepo "github.com/viwallet/viwallet/internal/repo/card-repo"
	currencyrepo "github.com/viwallet/viwallet/internal/repo/currency-repo"
	transactionrepo "github.com/viwallet/viwallet/internal/repo/transaction-repo"
	userrepo "github.com/viwallet/viwallet/internal/repo/user-repo"
	walletrepo "github.com/viwallet/viwallet/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	CurrencyRepo    *currencyrepo.Repository
	WalletRepo      *walletrepo.Repository
	CardRepo        *cardrepo.Repository
	TransactionRepo *transactionrepo.Repository
	AuditRepo       *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		CurrencyRepo:    currencyrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
		CardRepo:        cardrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		AuditRepo:       auditrepo.New(conn),
	}
}
