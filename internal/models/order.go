package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	PaymentMethodVisa       = "visa"
	PaymentMethodMastercard = "mastercard"
	PaymentMethodPaypal     = "paypal"
)

type OrderLine struct {
	OrderID  uuid.UUID       `json:"order_id"`
	OptionID int64           `json:"option_id"`
	Name     string          `json:"name"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Quantity int             `json:"quantity"`
}

// Order is a submitted cart, priced at submission time.
type Order struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	PaymentMethod     string          `json:"payment_method"`
	Message           string          `json:"message"`
	Rush              bool            `json:"rush"`
	ExtraService      bool            `json:"extra_service"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	MessageSurcharge  decimal.Decimal `json:"message_surcharge"`
	ModifierSurcharge decimal.Decimal `json:"modifier_surcharge"`
	Total             decimal.Decimal `json:"total"`
	PaymentIntentID   string          `json:"payment_intent_id,omitempty"`
	Status            OrderStatus     `json:"status"`
	Lines             []OrderLine     `json:"lines"`
	CreatedAt         time.Time       `json:"created_at"`
}

type SubmitOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=visa mastercard paypal"`
	Email         string `json:"email" validate:"required,email"`
}

type OrderConfirmation struct {
	OrderID      uuid.UUID       `json:"order_id"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	ClientSecret string          `json:"client_secret,omitempty"`
	Message      string          `json:"message"`
}
