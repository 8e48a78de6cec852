package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent chan sentMail
	err  error
}

type sentMail struct {
	toEmail string
	subject string
	html    string
}

func (r *recordingSender) Send(ctx context.Context, toName, toEmail, subject, htmlContent string) error {
	r.sent <- sentMail{toEmail: toEmail, subject: subject, html: htmlContent}
	return r.err
}

func TestNotifications_DispatchDeliversInBackground(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{sent: make(chan sentMail, 1)}
	n := NewNotifications(sender)

	n.Dispatch("Ann", "ann@x.com", "Hello", "<p>hi</p>")

	select {
	case mail := <-sender.sent:
		assert.Equal(t, "ann@x.com", mail.toEmail)
		assert.Equal(t, "Hello", mail.subject)
		assert.Equal(t, "<p>hi</p>", mail.html)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatched email never reached the sender")
	}
}

func TestNotifications_DispatchSwallowsFailure(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{sent: make(chan sentMail, 1), err: errors.New("smtp down")}
	n := NewNotifications(sender)

	// Must not panic or block the caller.
	n.Dispatch("Ann", "ann@x.com", "Hello", "<p>hi</p>")

	select {
	case <-sender.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatched email never reached the sender")
	}
}

func TestNotifications_SendSurfacesFailure(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{sent: make(chan sentMail, 1), err: errors.New("smtp down")}
	n := NewNotifications(sender)

	err := n.Send(context.Background(), "Ann", "ann@x.com", "Hello", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}
