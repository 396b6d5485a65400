package service

import (
	"github.com/viwallet/viwallet/internal/pg"
	"github.com/viwallet/viwallet/internal/repo"
	"github.com/viwallet/viwallet/internal/service/authservice"
	"github.com/viwallet/viwallet/internal/service/cardservice"
	"github.com/viwallet/viwallet/internal/service/currencyservice"
	"github.com/viwallet/viwallet/internal/service/transferservice"
	"github.com/viwallet/viwallet/internal/service/walletservice"
	pkgauth "github.com/viwallet/viwallet/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	WalletService   *walletservice.Service
	CardService     *cardservice.Service
	TransferService *transferservice.Service
	CurrencyService *currencyservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.CurrencyRepo, repo.CardRepo)
	cardService := cardservice.New(repo.CardRepo, repo.WalletRepo, repo.UserRepo, repo.AuditRepo, txManager)
	transferService := transferservice.New(repo.WalletRepo, repo.UserRepo, repo.CurrencyRepo, repo.TransactionRepo, repo.AuditRepo, txManager)
	currencyService := currencyservice.New(repo.CurrencyRepo)
	authService := authservice.New(repo.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		WalletService:   walletService,
		CardService:     cardService,
		TransferService: transferService,
		CurrencyService: currencyService,
	}
}
