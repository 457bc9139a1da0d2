package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"bolao/internal/domain"
	"bolao/internal/dto"
	"bolao/internal/service/authservice"
	"bolao/pkg/auth"
	"bolao/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update authservice.ProfileUpdate) (*domain.User, error)
}

type ProfileHandler struct {
	authService Service
}

func New(authService Service) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
	}
}

func userIDFromContext(r *http.Request) (uuid.UUID, error) {
	raw, _ := r.Context().Value(auth.UserIDKey).(string)
	return uuid.Parse(raw)
}

// Get godoc
//
//	@Summary		Profile of the authenticated user
//	@Tags			Perfil
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Router			/api/perfil [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.authService.GetProfile(r.Context(), userID)
	if errors.Is(err, authservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Login:    user.Login,
		Nome:     user.Nome,
		Telefone: user.Telefone,
		ChavePix: user.ChavePix,
	})
}

// Update godoc
//
//	@Summary		Update profile fields
//	@Description	Absent fields keep their value; a blank telefone or chave_pix clears it
//	@Tags			Perfil
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Nothing to update or blank nome"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Profile not found"
//	@Router			/api/perfil [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), userID, authservice.ProfileUpdate{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		ChavePix: req.ChavePix,
	})
	switch {
	case errors.Is(err, authservice.ErrNothingToUpdate):
		utils.RespondWithError(w, http.StatusBadRequest, "Nenhum dado para atualizar")
		return
	case errors.Is(err, authservice.ErrEmptyName):
		utils.RespondWithError(w, http.StatusBadRequest, "Nome não pode ser vazio")
		return
	case errors.Is(err, authservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		Login:    user.Login,
		Nome:     user.Nome,
		Telefone: user.Telefone,
		ChavePix: user.ChavePix,
	})
}
