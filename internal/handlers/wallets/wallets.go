package wallets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/internal/service/walletservice"
	"github.com/viwallet/viwallet/pkg/auth"
	"github.com/viwallet/viwallet/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, ownerID int, name string, currencyID int) (*domain.Wallet, error)
	Rename(ctx context.Context, ownerID, walletID int, newName string) (*domain.Wallet, error)
	Delete(ctx context.Context, ownerID, walletID int) error
	List(ctx context.Context, ownerID int) ([]domain.Wallet, error)
	Get(ctx context.Context, ownerID, walletID int) (*domain.Wallet, error)
}

type WalletHandler struct {
	walletService Service
	validate      *validator.Validate
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		validate:      validator.New(),
	}
}

func toDTO(w domain.Wallet) dto.WalletResponseDTO {
	return dto.WalletResponseDTO{
		WalletID:     w.ID,
		Name:         w.Name,
		Balance:      w.Balance,
		CurrencyCode: w.CurrencyCode,
	}
}

// Create godoc
//
//	@Summary		Create a wallet
//	@Description	Create a wallet in the given currency; one wallet per currency per user
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWalletRequestDTO	true	"Wallet to create"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation or duplicate"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := h.walletService.Create(r.Context(), userID, req.Name, req.CurrencyID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrCurrencyNotFound),
			errors.Is(err, walletservice.ErrWalletExists),
			errors.Is(err, walletservice.ErrInvalidName),
			errors.Is(err, walletservice.ErrNameTaken):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*wallet))
}

// List godoc
//
//	@Summary		List the caller's wallets
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallets, err := h.walletService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wallets")
		return
	}

	response := dto.WalletsResponseDTO{Wallets: make([]dto.WalletResponseDTO, len(wallets))}
	for i, wallet := range wallets {
		response.Wallets[i] = toDTO(wallet)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get one of the caller's wallets
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wallet ID"
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Router			/api/wallets/{id} [get]
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	walletID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	wallet, err := h.walletService.Get(r.Context(), userID, walletID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*wallet))
}

// Rename godoc
//
//	@Summary		Rename a wallet
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Wallet ID"
//	@Param			request	body		dto.RenameWalletRequestDTO	true	"New name"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation error"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Router			/api/wallets/{id} [put]
func (h *WalletHandler) Rename(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	walletID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	var req dto.RenameWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wallet, err := h.walletService.Rename(r.Context(), userID, walletID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInvalidName),
			errors.Is(err, walletservice.ErrNameUnchanged),
			errors.Is(err, walletservice.ErrNameTaken):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*wallet))
}

// Delete godoc
//
//	@Summary		Delete a wallet
//	@Description	Delete an empty, card-free wallet owned by the caller
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	int	true	"Wallet ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Wallet not empty or has cards"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Router			/api/wallets/{id} [delete]
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	walletID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	err = h.walletService.Delete(r.Context(), userID, walletID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrWalletNotEmpty),
			errors.Is(err, walletservice.ErrWalletHasCards):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
