package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/almasezhe/warauction/internal/api/middleware"
	"github.com/almasezhe/warauction/internal/cart"
	appErrors "github.com/almasezhe/warauction/internal/errors"
	"github.com/almasezhe/warauction/internal/metrics"
	"github.com/almasezhe/warauction/internal/models"
	repository "github.com/almasezhe/warauction/internal/repositories"
	"github.com/almasezhe/warauction/pkg/stripe"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	checkoutSucceeded = "succeeded"
	checkoutFailed    = "failed"
	checkoutRejected  = "rejected"
)

type CheckoutService interface {
	Submit(ctx context.Context, identity *models.Identity, req *models.SubmitOrderRequest) (*models.OrderConfirmation, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type checkoutService struct {
	carts         CartService
	orders        repository.OrderRepository
	stripeClient  stripe.Client
	notifications NotificationService
	currency      string
	scale         int32
}

// NewCheckoutService charges in the given ISO 4217 currency. Codes are
// validated at config load; an unknown one falls back to two decimals.
func NewCheckoutService(carts CartService, orders repository.OrderRepository, stripeClient stripe.Client, notifications NotificationService, currency string) CheckoutService {
	scale, err := stripe.CurrencyScale(currency)
	if err != nil {
		scale = 2
	}

	return &checkoutService{
		carts:         carts,
		orders:        orders,
		stripeClient:  stripeClient,
		notifications: notifications,
		currency:      currency,
		scale:         scale,
	}
}

// Submit turns the user's cart into an order. The cart is cleared only once
// the order is stored; any failure leaves it as it was so the user can retry.
func (s *checkoutService) Submit(ctx context.Context, identity *models.Identity, req *models.SubmitOrderRequest) (*models.OrderConfirmation, error) {
	logger := middleware.LoggerFromContext(ctx)

	if !identity.Valid() {
		metrics.RecordCheckout(checkoutRejected)
		return nil, appErrors.UnauthorizedError("Sign in to place an order")
	}

	view, err := s.carts.BeginSubmission(ctx, identity.UserID)
	if err != nil {
		metrics.RecordCheckout(checkoutRejected)
		return nil, err
	}

	order := newOrder(identity, req, view)

	confirmation, err := s.place(ctx, order)
	if err != nil {
		metrics.RecordCheckout(checkoutFailed)

		if settleErr := s.carts.SettleSubmission(ctx, identity.UserID, false); settleErr != nil {
			logger.Error("Failed to release cart after submission failure", slog.String("error", settleErr.Error()))
		}

		return nil, err
	}

	if err := s.carts.SettleSubmission(ctx, identity.UserID, true); err != nil {
		logger.Error("Failed to clear cart after submission", slog.String("order_id", order.ID.String()), slog.String("error", err.Error()))
	}

	metrics.RecordCheckout(checkoutSucceeded)

	s.sendConfirmation(ctx, order)

	logger.Info("Order submitted",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()),
		slog.String("total", order.Total.String()),
	)

	return confirmation, nil
}

func newOrder(identity *models.Identity, req *models.SubmitOrderRequest, view *cart.View) *models.Order {
	orderID := uuid.New()

	return &models.Order{
		ID:                orderID,
		UserID:            identity.UserID,
		Username:          identity.DisplayName(),
		Email:             req.Email,
		PaymentMethod:     req.PaymentMethod,
		Message:           view.Modifiers.Message,
		Rush:              view.Modifiers.Rush,
		ExtraService:      view.Modifiers.ExtraService,
		Subtotal:          view.Breakdown.Subtotal,
		MessageSurcharge:  view.Breakdown.MessageSurcharge,
		ModifierSurcharge: view.Breakdown.ModifierSurcharge,
		Total:             view.Breakdown.Total,
		Status:            models.OrderStatusPending,
		Lines: lo.Map(view.Lines, func(l cart.Line, _ int) models.OrderLine {
			return models.OrderLine{
				OrderID:  orderID,
				OptionID: l.Item.ID,
				Name:     l.Item.Name,
				UnitCost: l.Item.UnitCost,
				Quantity: l.Quantity,
			}
		}),
	}
}

func (s *checkoutService) place(ctx context.Context, order *models.Order) (*models.OrderConfirmation, error) {
	logger := middleware.LoggerFromContext(ctx)

	var clientSecret string

	// Free orders need no payment and are confirmed straight away.
	if order.Total.IsPositive() {
		intent, err := s.stripeClient.CreatePaymentIntent(&stripe.IntentRequest{
			Amount:        stripe.MinorUnits(order.Total, s.scale),
			Currency:      s.currency,
			Description:   fmt.Sprintf("Order %s", order.ID),
			ReceiptEmail:  order.Email,
			PaymentMethod: order.PaymentMethod,
			Metadata: map[string]string{
				"order_id": order.ID.String(),
				"user_id":  order.UserID.String(),
			},
		})
		if err != nil {
			return nil, appErrors.ThirdPartyError("Failed to create payment intent").WithError(err)
		}

		order.PaymentIntentID = intent.ID
		clientSecret = intent.ClientSecret
	} else {
		order.Status = models.OrderStatusConfirmed
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		if order.PaymentIntentID != "" {
			if _, cancelErr := s.stripeClient.CancelPaymentIntent(order.PaymentIntentID); cancelErr != nil {
				logger.Error("Failed to cancel payment intent of unsaved order",
					slog.String("payment_intent_id", order.PaymentIntentID),
					slog.String("error", cancelErr.Error()),
				)
			}
		}

		return nil, appErrors.DatabaseError("Failed to save order").WithError(err)
	}

	return &models.OrderConfirmation{
		OrderID:      order.ID,
		Total:        order.Total,
		Status:       order.Status,
		ClientSecret: clientSecret,
		Message:      "Order placed successfully.",
	}, nil
}

// sendConfirmation is best effort: a mail failure never fails a stored order.
func (s *checkoutService) sendConfirmation(ctx context.Context, order *models.Order) {
	if err := s.notifications.SendOrderConfirmation(ctx, order); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Order confirmation not delivered",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *checkoutService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {
	orders, total, err := s.orders.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

var webhookStatuses = map[string]models.OrderStatus{
	"payment_intent.succeeded":      models.OrderStatusConfirmed,
	"payment_intent.payment_failed": models.OrderStatusCancelled,
	"payment_intent.canceled":       models.OrderStatusCancelled,
}

// HandlePaymentWebhook moves orders along as Stripe settles their payment intents.
func (s *checkoutService) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, appErrors.BadRequestError("Invalid webhook signature").WithError(err)
	}

	status, ok := webhookStatuses[string(event.Type)]
	if !ok {
		return event, nil
	}

	if event.Data == nil {
		return event, appErrors.ThirdPartyError("Missing event data in webhook")
	}

	intentID, _ := event.Data.Object["id"].(string)
	if intentID == "" {
		return event, appErrors.ThirdPartyError("Missing payment intent ID in webhook")
	}

	if err := s.orders.UpdateStatusByPaymentIntent(ctx, intentID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			middleware.LoggerFromContext(ctx).Warn("Webhook for unknown payment intent",
				slog.String("payment_intent_id", intentID),
				slog.String("event_type", string(event.Type)),
			)

			return event, nil
		}

		return event, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	return event, nil
}
