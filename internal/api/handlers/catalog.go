package handlers

import (
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/models"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/almasezhe/warauction/internal/utils"
	"github.com/almasezhe/warauction/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListOptions godoc
//
//	@Summary		List purchasable options
//	@Description	Returns the catalog ordered by id. An unavailable catalog is returned as an empty list.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.Option}	"Catalog options"
//	@Router			/options [get]
func (h *CatalogHandler) ListOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options := h.catalogService.AvailableOptions(r.Context())

		middleware.LoggerFromContext(r.Context()).Debug("Catalog listed", slog.Int("count", len(options)))
		response.Success(w, http.StatusOK, options)
	}
}

func (h *CatalogHandler) GetOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid option id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		option, err := h.catalogService.GetOption(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get option", slog.Int64("optionId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, option)
	}
}

// CreateOption godoc
//
//	@Summary		Create a catalog option (Admin)
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			option	body		models.CreateOptionRequest	true	"Option"
//	@Success		201		{object}	response.APIResponse{data=models.Option}
//	@Failure		400		{object}	response.APIResponse	"Validation error"
//	@Failure		403		{object}	response.APIResponse	"Admin access required"
//	@Security		BearerAuth
//	@Router			/admin/options [post]
func (h *CatalogHandler) CreateOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOptionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create option input")
			return
		}

		option, err := h.catalogService.CreateOption(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create option", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Option created", slog.Int64("optionId", option.ID))
		response.Success(w, http.StatusCreated, option)
	}
}

func (h *CatalogHandler) UpdateOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOptionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update option input", slog.Int64("optionId", id))
			return
		}

		option, err := h.catalogService.UpdateOption(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update option", slog.Int64("optionId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Option updated", slog.Int64("optionId", id))
		response.Success(w, http.StatusOK, option)
	}
}

func (h *CatalogHandler) DeleteOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.catalogService.DeleteOption(r.Context(), id); err != nil {
			logger.Error("Failed to delete option", slog.Int64("optionId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Option deleted", slog.Int64("optionId", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
