package dto

import "github.com/shopspring/decimal"

type CreateWalletRequestDTO struct {
	Name       string `json:"name"       example:"Holiday fund" validate:"required,max=50"`
	CurrencyID int    `json:"currencyId" example:"1" validate:"required"`
}

type RenameWalletRequestDTO struct {
	Name string `json:"name" example:"Rainy day fund" validate:"required,max=50"`
}

type WalletResponseDTO struct {
	WalletID     int             `json:"walletId" example:"7"`
	Name         string          `json:"name" example:"Holiday fund"`
	Balance      decimal.Decimal `json:"balance" example:"120.50"`
	CurrencyCode string          `json:"currencyCode" example:"EUR"`
}

type WalletsResponseDTO struct {
	Wallets []WalletResponseDTO `json:"wallets"`
}
