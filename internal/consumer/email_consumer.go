package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/monitoring"
	amqp "github.com/rabbitmq/amqp091-go"
)

type EmailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type EmailConsumer struct {
	sender EmailSender
}

func NewEmailConsumer(sender EmailSender) *EmailConsumer {
	return &EmailConsumer{sender: sender}
}

// Start drains msgs until the channel closes. The returned channel is closed
// once the last delivery has been settled.
func (ec *EmailConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			ec.handleMessage(ctx, msg)
		}
		log.Println("[EmailConsumer] channel closed, stopping consumer")
	}()
	return done
}

func (ec *EmailConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var email dto.EmailMessage
	if err := json.Unmarshal(msg.Body, &email); err != nil || email.To == "" {
		log.Printf("[EmailConsumer] dropping malformed message: %v", err)
		msg.Nack(false, false)
		return
	}

	text, body := renderEmail(email)
	if err := ec.sender.Send(ctx, email.To, email.Subject, text, body); err != nil {
		monitoring.TrackEmail("failed")
		// one retry, then give up so a dead provider cannot wedge the queue
		requeue := !msg.Redelivered
		log.Printf("[EmailConsumer] notification %d to %s failed (requeue=%t): %v", email.NotificationID, email.To, requeue, err)
		msg.Nack(false, requeue)
		return
	}

	monitoring.TrackEmail("sent")
	log.Printf("[EmailConsumer] delivered notification %d to %s", email.NotificationID, email.To)
	msg.Ack(false)
}

func renderEmail(m dto.EmailMessage) (text, body string) {
	greeting := "Hi,"
	if m.Name != "" {
		greeting = fmt.Sprintf("Hi %s,", m.Name)
	}

	var t strings.Builder
	t.WriteString(greeting + "\n\n" + m.Text + "\n")
	if m.Link != "" {
		t.WriteString("\nView it on MusiConnect: " + m.Link + "\n")
	}

	var h strings.Builder
	h.WriteString("<p>" + html.EscapeString(greeting) + "</p>")
	h.WriteString("<p>" + html.EscapeString(m.Text) + "</p>")
	if m.Link != "" {
		h.WriteString(`<p><a href="` + html.EscapeString(m.Link) + `">View it on MusiConnect</a></p>`)
	}
	return t.String(), h.String()
}
