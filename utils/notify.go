package utils

import (
	"context"
	"log"
	"time"
)

// EmailSender is the outbound notification sink.
type EmailSender interface {
	Send(ctx context.Context, toName, toEmail, subject, htmlContent string) error
}

// Notifications decouples best-effort email from the request/response path.
// Dispatch never reports failure to the caller; Send does, and is reserved for
// the one flow (OTP resend) where transport failure must surface.
type Notifications struct {
	Sender  EmailSender
	Timeout time.Duration
}

func NewNotifications(sender EmailSender) *Notifications {
	return &Notifications{Sender: sender, Timeout: 30 * time.Second}
}

// Dispatch sends the email on its own goroutine with a detached context, so a
// slow or failing transport cannot affect the triggering request. Failures are
// logged and dropped; there is no retry.
func (n *Notifications) Dispatch(toName, toEmail, subject, htmlContent string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.Timeout)
		defer cancel()

		if err := n.Sender.Send(ctx, toName, toEmail, subject, htmlContent); err != nil {
			log.Printf("Notification to %s failed: %v", toEmail, err)
		}
	}()
}

// Send delivers synchronously and returns the transport error, if any.
func (n *Notifications) Send(ctx context.Context, toName, toEmail, subject, htmlContent string) error {
	return n.Sender.Send(ctx, toName, toEmail, subject, htmlContent)
}
