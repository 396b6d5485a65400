package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCardRequestDTO struct {
	WalletID       int       `json:"walletId"       example:"7" validate:"required"`
	CardNumber     string    `json:"cardNumber"     example:"4561261212345467" validate:"required,max=20"`
	ExpirationDate time.Time `json:"expirationDate" example:"2028-01-01T00:00:00Z" validate:"required"`
}

type CardResponseDTO struct {
	CardID         int       `json:"cardId" example:"3"`
	CardNumber     string    `json:"cardNumber" example:"4561261212345467"`
	ExpirationDate time.Time `json:"expirationDate" example:"2028-01-01T00:00:00Z"`
	Blocked        bool      `json:"blocked" example:"false"`
	WalletID       int       `json:"walletId" example:"7"`
}

type WithdrawRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"30.00"`
}
