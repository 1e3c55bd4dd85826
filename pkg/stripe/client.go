package stripe

import (
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"
)

type (
	Event         = stripe.Event
	PaymentIntent = stripe.PaymentIntent
)

// IntentRequest describes the charge for one submitted order. Amount is in
// the currency's minor units.
type IntentRequest struct {
	Amount        int64
	Currency      string
	Description   string
	ReceiptEmail  string
	PaymentMethod string
	Metadata      map[string]string
}

type Client interface {
	CreatePaymentIntent(req *IntentRequest) (*PaymentIntent, error)
	CancelPaymentIntent(paymentIntentID string) (*PaymentIntent, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// paymentMethodTypes maps the storefront's payment choice onto Stripe method types.
func paymentMethodTypes(method string) []*string {
	if method == "paypal" {
		return stripe.StringSlice([]string{"paypal"})
	}

	return stripe.StringSlice([]string{"card"})
}

func (s *stripeClient) CreatePaymentIntent(req *IntentRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		Description:        stripe.String(req.Description),
		PaymentMethodTypes: paymentMethodTypes(req.PaymentMethod),
	}

	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return intent, nil
}

// CancelPaymentIntent releases an intent whose order could not be stored.
func (s *stripeClient) CancelPaymentIntent(paymentIntentID string) (*PaymentIntent, error) {
	intent, err := paymentintent.Cancel(paymentIntentID, nil)
	if err != nil {
		return nil, err
	}

	return intent, nil
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
