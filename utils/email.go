package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/thecosmeticshop/backend/config"
)

// Mailer sends transactional email through SendGrid. Credentials are injected
// at construction, never read from the environment at send time.
type Mailer struct {
	apiKey      string
	fromName    string
	fromAddress string
}

// NewMailer builds a Mailer from the email section of the app config.
func NewMailer(cfg config.EmailConfig) *Mailer {
	return &Mailer{
		apiKey:      cfg.SendGridAPIKey,
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(ctx context.Context, toName, toEmail, subject, htmlContent string) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is not configured")
	}

	from := mail.NewEmail(m.fromName, m.fromAddress)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, stripTags(htmlContent), htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	log.Printf("Email sent to %s. Status Code: %d", toEmail, response.StatusCode)
	return nil
}

// stripTags produces a rough plain-text alternative for the HTML body. It is
// good enough for the text/plain part of a transactional mail.
func stripTags(html string) string {
	out := make([]rune, 0, len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}
