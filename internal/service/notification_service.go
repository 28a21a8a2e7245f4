package service

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
)

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 200
)

type NotificationService interface {
	List(ctx context.Context, user *models.User, unreadOnly bool, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, user *models.User) (int64, error)
	MarkRead(ctx context.Context, user *models.User, id uint) error
	MarkAllRead(ctx context.Context, user *models.User) (int64, error)
	Delete(ctx context.Context, user *models.User, id uint) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context, user *models.User, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}
	return s.notifications.FindForUser(ctx, user.ID, unreadOnly, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, user *models.User) (int64, error) {
	return s.notifications.CountUnread(ctx, user.ID)
}

// MarkRead is scoped to the owner, so another user's id reads as not found.
func (s *notificationService) MarkRead(ctx context.Context, user *models.User, id uint) error {
	ok, err := s.notifications.MarkRead(ctx, user.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, user *models.User) (int64, error) {
	return s.notifications.MarkAllRead(ctx, user.ID)
}

func (s *notificationService) Delete(ctx context.Context, user *models.User, id uint) error {
	ok, err := s.notifications.Delete(ctx, user.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
