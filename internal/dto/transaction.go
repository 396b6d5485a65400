package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SendMoneyRequestDTO struct {
	ReceiverID int             `json:"receiverId" example:"2" validate:"required"`
	CurrencyID int             `json:"currencyId" example:"1" validate:"required"`
	Amount     decimal.Decimal `json:"amount" example:"50.00"`
}

type TransactionResponseDTO struct {
	TransactionID   int             `json:"transactionId" example:"11"`
	SenderID        int             `json:"senderId" example:"1"`
	ReceiverID      int             `json:"receiverId" example:"2"`
	CurrencyCode    string          `json:"currencyCode" example:"EUR"`
	Amount          decimal.Decimal `json:"amount" example:"50.00"`
	TransactionDate time.Time       `json:"transactionDate" example:"2025-06-01T12:00:00Z"`
	Reverted        bool            `json:"reverted" example:"false"`
	RevertedBy      *int            `json:"revertedBy,omitempty"`
	RevertedAt      *time.Time      `json:"revertedAt,omitempty"`
}

type TransactionsPageResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Total        int                      `json:"total" example:"42"`
	Page         int                      `json:"page" example:"1"`
	PageSize     int                      `json:"pageSize" example:"20"`
}
