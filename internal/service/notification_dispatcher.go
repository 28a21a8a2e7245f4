package service

import (
	"context"
	"log"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/monitoring"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/pkg/rabbitmq"
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// RealtimePublisher is called on the request path and must return without
// waiting on the network.
type RealtimePublisher interface {
	Publish(userID uint, kind string, payload any)
}

// NotificationDispatcher fans a committed notification out to email and realtime.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n *models.Notification)
}

type notificationDispatcher struct {
	users     repository.UserRepository
	publisher EventPublisher
	realtime  RealtimePublisher
	baseURL   string
}

// NewNotificationDispatcher accepts nil publisher/realtime to skip that channel.
func NewNotificationDispatcher(users repository.UserRepository, publisher EventPublisher, realtime RealtimePublisher, baseURL string) NotificationDispatcher {
	return &notificationDispatcher{users: users, publisher: publisher, realtime: realtime, baseURL: baseURL}
}

func (d *notificationDispatcher) Dispatch(ctx context.Context, n *models.Notification) {
	if d.realtime != nil {
		d.realtime.Publish(n.UserID, "notification", dto.ToNotificationResponse(n))
	}
	if d.publisher == nil {
		return
	}

	user, err := d.users.FindByID(ctx, n.UserID)
	if err != nil || user.Email == "" {
		log.Printf("[Notifications] no email for user %d, skipping notification %d", n.UserID, n.ID)
		monitoring.TrackEmail("skipped")
		return
	}

	msg := dto.EmailMessage{
		NotificationID: n.ID,
		To:             user.Email,
		Name:           user.Name,
		Subject:        n.Title,
		Text:           n.Message,
	}
	if n.Link != "" {
		msg.Link = d.baseURL + n.Link
	}

	// the row is already committed; a lost email must not fail the request
	if err := d.publisher.Publish(ctx, rabbitmq.RoutingKeyEmail, msg); err != nil {
		log.Printf("[Notifications] queue email for notification %d: %v", n.ID, err)
		monitoring.TrackEmail("failed")
	}
}
