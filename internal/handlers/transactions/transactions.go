package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/internal/service/transferservice"
	"github.com/viwallet/viwallet/pkg/auth"
	"github.com/viwallet/viwallet/pkg/utils"
)

type Service interface {
	Send(ctx context.Context, senderID, receiverID, currencyID int, amount decimal.Decimal) (*domain.Transaction, error)
	Revert(ctx context.Context, revertedBy, transactionID int) (*domain.Transaction, error)
	ListMine(ctx context.Context, userID int) ([]domain.Transaction, error)
	ListAll(ctx context.Context, page, pageSize int) ([]domain.Transaction, int, error)
}

type TransactionHandler struct {
	transferService Service
	validate        *validator.Validate
}

func New(transferService Service) *TransactionHandler {
	return &TransactionHandler{
		transferService: transferService,
		validate:        validator.New(),
	}
}

func toDTO(t domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		TransactionID:   t.ID,
		SenderID:        t.SenderID,
		ReceiverID:      t.ReceiverID,
		CurrencyCode:    t.CurrencyCode,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Reverted:        t.Reverted,
		RevertedBy:      t.RevertedBy,
		RevertedAt:      t.RevertedAt,
	}
}

// Send godoc
//
//	@Summary		Transfer funds to another user
//	@Description	Move funds between same-currency wallets; the receiver's wallet is auto-created when absent
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendMoneyRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Self-transfer, insufficient funds, or unknown receiver"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/send [post]
func (h *TransactionHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SendMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.transferService.Send(r.Context(), userID, req.ReceiverID, req.CurrencyID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrInvalidAmount),
			errors.Is(err, transferservice.ErrSelfTransfer),
			errors.Is(err, transferservice.ErrCurrencyNotFound),
			errors.Is(err, transferservice.ErrNoSenderWallet),
			errors.Is(err, transferservice.ErrInsufficientFunds),
			errors.Is(err, transferservice.ErrReceiverNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*transaction))
}

// ListMine godoc
//
//	@Summary		List the caller's transactions
//	@Description	All transactions where the caller is sender or receiver, newest first
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/my-transactions [get]
func (h *TransactionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.transferService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = toDTO(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Revert godoc
//
//	@Summary		Revert a transaction
//	@Description	Admin-only: restore both wallets to their pre-transfer balances; a transaction can be reverted once
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Already reverted, short balance, or missing wallet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Non-admin caller"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Router			/api/transactions/{id}/revert [post]
func (h *TransactionHandler) Revert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := domain.Role(r.Context().Value(auth.RoleKey).(string))
	if !role.CanRevert() {
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
		return
	}

	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	transaction, err := h.transferService.Revert(r.Context(), userID, transactionID)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transferservice.ErrAlreadyReverted),
			errors.Is(err, transferservice.ErrWalletMissing),
			errors.Is(err, transferservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*transaction))
}

// ListAll godoc
//
//	@Summary		List all transactions (admin)
//	@Description	Paged global transaction listing, newest first
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int	false	"Page, starting at 1"
//	@Param			pageSize	query		int	false	"Page size, default 20"
//	@Success		200			{object}	dto.TransactionsPageResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Non-admin caller"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions [get]
func (h *TransactionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	role := domain.Role(r.Context().Value(auth.RoleKey).(string))
	if !role.CanListAllTransactions() {
		utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	transactions, total, err := h.transferService.ListAll(r.Context(), page, pageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := dto.TransactionsPageResponseDTO{
		Transactions: make([]dto.TransactionResponseDTO, len(transactions)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
	for i, t := range transactions {
		response.Transactions[i] = toDTO(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
