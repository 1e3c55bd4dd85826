package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/almasezhe/warauction/internal/models"
	"github.com/almasezhe/warauction/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type notificationService struct {
	emailService sendgrid.EmailService
}

func NewNotificationService(emailService sendgrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

// SendOrderConfirmation mails the buyer a plain-text receipt of a stored order.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	email := &sendgrid.Email{
		To:      order.Email,
		ToName:  order.Username,
		Subject: fmt.Sprintf("Your order %s", order.ID),
		Content: confirmationText(order),
	}

	if err := n.emailService.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}

func confirmationText(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\nWe received your order %s.\n\n", order.Username, order.ID)

	for _, l := range order.Lines {
		fmt.Fprintf(&b, "%d x %s @ %s\n", l.Quantity, l.Name, l.UnitCost.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", order.Subtotal.StringFixed(2))
	if !order.MessageSurcharge.IsZero() {
		fmt.Fprintf(&b, "Message: %s\n", order.MessageSurcharge.StringFixed(2))
	}
	if !order.ModifierSurcharge.IsZero() {
		fmt.Fprintf(&b, "Add-ons: %s\n", order.ModifierSurcharge.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s\n", order.Total.StringFixed(2))

	return b.String()
}
