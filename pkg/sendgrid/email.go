package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is a single outgoing message with plain text and optional HTML bodies.
type Email struct {
	To          string
	ToName      string
	Subject     string
	Content     string
	HTMLContent string
}

type EmailService interface {
	Send(ctx context.Context, email *Email) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, email *Email) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(email.ToName, email.To))
	personalization.Subject = email.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", email.Content))
	if email.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", email.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}
