package handlers

import (
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/models"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileService  service.ProfileService
	identityService service.IdentityService
	validator       *validator.Validate
}

func NewProfileHandler(profileService service.ProfileService, identityService service.IdentityService) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		identityService: identityService,
		validator:       validator.New(),
	}
}

func (h *ProfileHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		user, err := h.profileService.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to get profile", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// Me returns the identity snapshot used for ordering.
func (h *ProfileHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		identity, err := h.identityService.Resolve(r.Context(), claims)
		if err != nil {
			logger.Warn("Failed to resolve identity", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, identity)
	}
}

func (h *ProfileHandler) UpdateUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.UpdateUsernameRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.profileService.UpdateUsername(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update username", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Username updated")
		response.Success(w, http.StatusOK, user)
	}
}

func (h *ProfileHandler) UpdateAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.UpdateAvatarRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.profileService.UpdateAvatar(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update avatar", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

func (h *ProfileHandler) UpdatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.UpdatePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.profileService.UpdatePassword(r.Context(), claims.UserID, &req); err != nil {
			logger.Error("Failed to update password", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Password updated")
		response.Success(w, http.StatusOK, map[string]string{"message": "Password updated"})
	}
}

// SignOut drops the identity snapshot and the in-memory cart.
func (h *ProfileHandler) SignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		h.identityService.SignOut(r.Context(), claims.UserID)

		logger.Info("User signed out")
		w.WriteHeader(http.StatusNoContent)
	}
}
