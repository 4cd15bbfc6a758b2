package service

import (
	"context"
	"fmt"
	"strings"

	"fleetrental-backend/internal/derive"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	toEmail   string
	toName    string
}

// NewEmailService builds the SendGrid-backed digest sender. Digests go to
// the configured fleet manager address.
func NewEmailService(apiKey, fromEmail, fromName, toEmail, toName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		toName:    toName,
	}
}

func (s *emailService) SendAlertDigest(ctx context.Context, subject string, alerts []derive.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	var plain strings.Builder
	var html strings.Builder
	html.WriteString("<ul>")
	for _, a := range alerts {
		fmt.Fprintf(&plain, "- [%s] %s: %s\n", a.Severity, a.Title, a.Message)
		if a.Severity == derive.AlertSeverityDestructive {
			fmt.Fprintf(&html, `<li><strong>%s</strong>: %s</li>`, a.Title, a.Message)
		} else {
			fmt.Fprintf(&html, `<li>%s: %s</li>`, a.Title, a.Message)
		}
	}
	html.WriteString("</ul>")

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(s.toName, s.toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plain.String(), html.String())

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
