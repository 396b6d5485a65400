package cards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/internal/service/cardservice"
	"github.com/viwallet/viwallet/pkg/auth"
	"github.com/viwallet/viwallet/pkg/utils"
	"github.com/viwallet/viwallet/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, ownerID, walletID int, cardNumber string, expiration time.Time) (*domain.Card, error)
	SetBlocked(ctx context.Context, requesterID int, requesterRole domain.Role, cardID int, blocked bool) error
	Withdraw(ctx context.Context, ownerID, cardID int, amount decimal.Decimal) error
	List(ctx context.Context, ownerID int) ([]domain.Card, error)
}

type CardHandler struct {
	cardService Service
	validate    *validator.Validate
}

func New(cardService Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		validate:    validator.New(),
	}
}

func toDTO(c domain.Card) dto.CardResponseDTO {
	return dto.CardResponseDTO{
		CardID:         c.ID,
		CardNumber:     c.CardNumber,
		ExpirationDate: c.ExpirationDate,
		Blocked:        c.Blocked,
		WalletID:       c.WalletID,
	}
}

// Create godoc
//
//	@Summary		Issue a card
//	@Description	Issue a payment card against one of the caller's wallets; the per-wallet card quota follows the caller's role
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCardRequestDTO	true	"Card to issue"
//	@Success		200		{object}	dto.CardResponseDTO
//	@Failure		400		{object}	utils.Response	"Quota, duplicate number, bad number, or unknown wallet"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/card/create [post]
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validate.IsCardNumber(req.CardNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card number")
		return
	}

	card, err := h.cardService.Create(r.Context(), userID, req.WalletID, req.CardNumber, req.ExpirationDate)
	if err != nil {
		switch {
		case errors.Is(err, cardservice.ErrWalletNotFound),
			errors.Is(err, cardservice.ErrCardLimitReached),
			errors.Is(err, cardservice.ErrCardNumberExists),
			errors.Is(err, cardservice.ErrCardExpired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*card))
}

// List godoc
//
//	@Summary		List the caller's cards
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/card/GetCards [get]
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cards, err := h.cardService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch cards")
		return
	}

	response := make([]dto.CardResponseDTO, len(cards))
	for i, card := range cards {
		response[i] = toDTO(card)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Block godoc
//
//	@Summary		Block a card
//	@Description	Admins may block any card, users only cards on their own wallets
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Card ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Card not found"
//	@Router			/api/card/{id}/block [post]
func (h *CardHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true, "Card blocked")
}

// Unblock godoc
//
//	@Summary		Unblock a card
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Card ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Card not found"
//	@Router			/api/card/{id}/unblock [post]
func (h *CardHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false, "Card unblocked")
}

func (h *CardHandler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool, okMessage string) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := domain.Role(r.Context().Value(auth.RoleKey).(string))
	cardID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card id")
		return
	}

	err = h.cardService.SetBlocked(r.Context(), userID, role, cardID, blocked)
	if err != nil {
		switch {
		case errors.Is(err, cardservice.ErrCardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cardservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: okMessage})
}

// Withdraw godoc
//
//	@Summary		Withdraw via card
//	@Description	Debit the card's wallet; rejected when the card is blocked or funds are short
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Card ID"
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Amount to withdraw"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Blocked card, bad amount, or insufficient funds"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the card owner"
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Router			/api/card/{id}/withdraw [post]
func (h *CardHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	cardID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid card id")
		return
	}

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.cardService.Withdraw(r.Context(), userID, cardID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, cardservice.ErrCardNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, cardservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, cardservice.ErrCardBlocked),
			errors.Is(err, cardservice.ErrInvalidAmount),
			errors.Is(err, cardservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal successful"})
}
