package currencies

import (
	"context"
	"net/http"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Currency, error)
}

type CurrencyHandler struct {
	currencyService Service
}

func New(currencyService Service) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
	}
}

// List godoc
//
//	@Summary		List currencies
//	@Description	All seeded currencies with their stored exchange rates; rates are informational, transfers never convert
//	@Tags			Currencies
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CurrencyResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/currencies [get]
func (h *CurrencyHandler) List(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.currencyService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch currencies")
		return
	}

	response := make([]dto.CurrencyResponseDTO, len(currencies))
	for i, c := range currencies {
		response[i] = dto.CurrencyResponseDTO{
			ID:           c.ID,
			Code:         c.Code,
			Name:         c.Name,
			ExchangeRate: c.ExchangeRate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
