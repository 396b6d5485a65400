package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/viwallet/viwallet/docs"
	authhandlers "github.com/viwallet/viwallet/internal/handlers/auth"
	cardhandlers "github.com/viwallet/viwallet/internal/handlers/cards"
	currencyhandlers "github.com/viwallet/viwallet/internal/handlers/currencies"
	transactionhandlers "github.com/viwallet/viwallet/internal/handlers/transactions"
	userhandlers "github.com/viwallet/viwallet/internal/handlers/user"
	wallethandlers "github.com/viwallet/viwallet/internal/handlers/wallets"
	"github.com/viwallet/viwallet/internal/service"
	"github.com/viwallet/viwallet/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetRole(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Block(w http.ResponseWriter, r *http.Request)
	Unblock(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Revert(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type CurrencyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	WalletHandler      WalletHandler
	CardHandler        CardHandler
	TransactionHandler TransactionHandler
	CurrencyHandler    CurrencyHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.AuthService),
		WalletHandler:      wallethandlers.New(s.WalletService),
		CardHandler:        cardhandlers.New(s.CardService),
		TransactionHandler: transactionhandlers.New(s.TransferService),
		CurrencyHandler:    currencyhandlers.New(s.CurrencyService),
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
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/user", func(r chi.Router) {
				r.Get("/role", h.UserHandler.GetRole)
				r.Get("/profile", h.UserHandler.GetProfile)
			})
			r.Route("/wallets", func(r chi.Router) {
				r.Post("/", h.WalletHandler.Create)
				r.Get("/", h.WalletHandler.List)
				r.Get("/{id}", h.WalletHandler.Get)
				r.Put("/{id}", h.WalletHandler.Rename)
				r.Delete("/{id}", h.WalletHandler.Delete)
			})
			r.Route("/card", func(r chi.Router) {
				r.Post("/create", h.CardHandler.Create)
				r.Get("/GetCards", h.CardHandler.List)
				r.Post("/{id}/block", h.CardHandler.Block)
				r.Post("/{id}/unblock", h.CardHandler.Unblock)
				r.Post("/{id}/withdraw", h.CardHandler.Withdraw)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/send", h.TransactionHandler.Send)
				r.Get("/my-transactions", h.TransactionHandler.ListMine)
				r.Post("/{id}/revert", h.TransactionHandler.Revert)
			})
			r.Get("/admin/transactions", h.TransactionHandler.ListAll)
			r.Get("/currencies", h.CurrencyHandler.List)
		})
	})

	return r
}
