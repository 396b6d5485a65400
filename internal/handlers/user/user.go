package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/dto"
	"github.com/viwallet/viwallet/pkg/auth"
	"github.com/viwallet/viwallet/pkg/utils"
)

type Service interface {
	GetRole(ctx context.Context, userID int) (domain.Role, error)
}

type UserHandler struct {
	authService Service
}

func New(authService Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// GetRole godoc
//
//	@Summary		Get the caller's role
//	@Description	Resolve the authenticated user's current role from storage
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RoleResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/role [get]
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	role, err := h.authService.GetRole(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RoleResponseDTO{
		Role: string(role),
	})
}

// GetProfile godoc
//
//	@Summary		Greet the caller
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	fullName := r.Context().Value(auth.FullNameKey).(string)
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Message: fmt.Sprintf("Hello, %s! Welcome to ViWallet.", fullName),
	})
}
