package handlers

import (
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/models"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/almasezhe/warauction/internal/utils/response"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListAdmins() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		admins, err := h.adminService.ListAdmins(r.Context())
		if err != nil {
			logger.Error("Failed to list admins", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, admins)
	}
}

func (h *AdminHandler) GrantAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		userID, err := utils.ParseUUID(r, "userId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.adminService.GrantAdmin(r.Context(), userID); err != nil {
			logger.Error("Failed to grant admin", slog.String("targetId", userID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Admin granted", slog.String("targetId", userID.String()))
		response.Success(w, http.StatusCreated, map[string]string{"user_id": userID.String()})
	}
}

func (h *AdminHandler) RevokeAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		userID, err := utils.ParseUUID(r, "userId")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.adminService.RevokeAdmin(r.Context(), claims.UserID, userID); err != nil {
			logger.Error("Failed to revoke admin", slog.String("targetId", userID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Admin revoked", slog.String("targetId", userID.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AdminHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		page, pageSize := pagination(r)

		users, total, err := h.adminService.ListUsers(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list users", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     users,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
