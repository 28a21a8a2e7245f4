package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailersend/mailersend-go"
)

type Mailer struct {
	client    *mailersend.Mailersend
	fromEmail string
	fromName  string
}

func New(apiKey, fromName, fromEmail string) *Mailer {
	return &Mailer{
		client:    mailersend.NewMailersend(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send delivers a single plain+HTML message.
func (m *Mailer) Send(ctx context.Context, to, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Email: to}})
	message.SetSubject(subject)
	message.SetText(text)
	if html != "" {
		message.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	log.Printf("[Mailer] sent %q to %s, message id %s", subject, to, res.Header.Get("X-Message-Id"))
	return nil
}
