package dto

import "github.com/shopspring/decimal"

type CurrencyResponseDTO struct {
	ID           int             `json:"id" example:"1"`
	Code         string          `json:"code" example:"EUR"`
	Name         string          `json:"name" example:"Euro"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" example:"1"`
}
