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

type AuctionHandler struct {
	auctionService service.AuctionService
	validator      *validator.Validate
}

func NewAuctionHandler(auctionService service.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionService: auctionService, validator: validator.New()}
}

// ListItems serves the public listing when activeOnly is set and the admin
// listing otherwise.
func (h *AuctionHandler) ListItems(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		items, err := h.auctionService.ListItems(r.Context(), activeOnly)
		if err != nil {
			logger.Error("Failed to list auction items", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

func (h *AuctionHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateAuctionItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.auctionService.CreateItem(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create auction item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Auction item created", slog.Int64("itemId", item.ID))
		response.Success(w, http.StatusCreated, item)
	}
}

func (h *AuctionHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateAuctionItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.auctionService.UpdateItem(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update auction item", slog.Int64("itemId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

func (h *AuctionHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.auctionService.DeleteItem(r.Context(), id); err != nil {
			logger.Error("Failed to delete auction item", slog.Int64("itemId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Auction item deleted", slog.Int64("itemId", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
