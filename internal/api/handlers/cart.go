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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns lines, modifiers and the priced breakdown. Passing a different profile starts a fresh cart priced with it.
//	@Tags			Cart
//	@Produce		json
//	@Param			profile	query		string	false	"Pricing profile (cart or single)"
//	@Success		200		{object}	response.APIResponse{data=cart.View}
//	@Failure		401		{object}	response.APIResponse	"Authentication required"
//	@Failure		409		{object}	response.APIResponse	"Submission in progress"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.View(r.Context(), claims.UserID, r.URL.Query().Get("profile"))
		if err != nil {
			logger.Warn("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.AddItem(r.Context(), claims.UserID, req.OptionID)
		if err != nil {
			logger.Warn("Failed to add item", slog.Int64("optionId", req.OptionID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("optionId", req.OptionID))
		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) SetQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.SetQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.SetQuantity(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Quantity not updated",
				slog.Int64("optionId", req.OptionID),
				slog.Int("quantity", req.Quantity),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		optionID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		view, err := h.cartService.RemoveItem(r.Context(), claims.UserID, optionID)
		if err != nil {
			logger.Warn("Failed to remove item", slog.Int64("optionId", optionID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateModifiers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.UpdateModifiersRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.UpdateModifiers(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to update modifiers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.Clear(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, view)
	}
}
