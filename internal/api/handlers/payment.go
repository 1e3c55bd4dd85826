package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/errors"
	service "github.com/almasezhe/warauction/internal/services"
	"github.com/almasezhe/warauction/internal/utils/response"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	checkoutService service.CheckoutService
}

func NewPaymentHandler(checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body").WithError(err))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		event, err := h.checkoutService.HandlePaymentWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook",
				slog.String("eventId", event.ID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed",
			slog.String("eventId", event.ID),
			slog.String("eventType", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
