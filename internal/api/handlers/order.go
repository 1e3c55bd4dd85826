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

// OrderHandler submits carts as orders. The identity used for a submission is
// resolved through the injected IdentityService rather than read from the token alone.
type OrderHandler struct {
	checkoutService service.CheckoutService
	identityService service.IdentityService
	validator       *validator.Validate
}

func NewOrderHandler(checkoutService service.CheckoutService, identityService service.IdentityService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		identityService: identityService,
		validator:       validator.New(),
	}
}

// Checkout godoc
//
//	@Summary		Submit the current cart as an order
//	@Description	Prices the cart, creates a payment intent and stores the order. The cart is cleared on success and kept on failure.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.SubmitOrderRequest	true	"Payment method and contact e-mail"
//	@Success		201		{object}	response.APIResponse{data=models.OrderConfirmation}
//	@Failure		400		{object}	response.APIResponse	"Validation error or empty cart"
//	@Failure		401		{object}	response.APIResponse	"Authentication required"
//	@Failure		409		{object}	response.APIResponse	"Submission already in progress"
//	@Failure		502		{object}	response.APIResponse	"Payment provider error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.SubmitOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		identity, err := h.identityService.Resolve(r.Context(), claims)
		if err != nil {
			logger.Warn("Identity unavailable for checkout", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		confirmation, err := h.checkoutService.Submit(r.Context(), identity, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", confirmation.OrderID.String()))
		response.Success(w, http.StatusCreated, confirmation)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseUUID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.checkoutService.GetOrder(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//
//	@Summary		List the user's orders
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"					minimum(1)
//	@Param			pageSize	query		int	false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}
//	@Failure		401			{object}	response.APIResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r)
		if !ok {
			return
		}

		page, pageSize := pagination(r)

		orders, total, err := h.checkoutService.ListOrders(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
