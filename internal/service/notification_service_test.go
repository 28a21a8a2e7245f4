package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/pkg/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationService_ScopedToOwner(t *testing.T) {
	repo := &mockNotificationRepo{
		markReadFn: func(ctx context.Context, userID, id uint) (bool, error) { return userID == 1, nil },
		deleteFn:   func(ctx context.Context, userID, id uint) (bool, error) { return userID == 1, nil },
	}
	svc := NewNotificationService(repo)

	assert.NoError(t, svc.MarkRead(context.Background(), &models.User{ID: 1}, 5))
	assert.ErrorIs(t, svc.MarkRead(context.Background(), &models.User{ID: 2}, 5), ErrNotificationNotFound)
	assert.NoError(t, svc.Delete(context.Background(), &models.User{ID: 1}, 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), &models.User{ID: 2}, 5), ErrNotificationNotFound)
}

func TestNotificationService_ListLimit(t *testing.T) {
	var gotLimit int
	var gotUnread bool
	repo := &mockNotificationRepo{findFn: func(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
		gotLimit, gotUnread = limit, unreadOnly
		return nil, nil
	}}
	svc := NewNotificationService(repo)

	_, err := svc.List(context.Background(), &models.User{ID: 1}, true, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultNotificationLimit, gotLimit)
	assert.True(t, gotUnread)

	_, err = svc.List(context.Background(), &models.User{ID: 1}, false, 9999)
	require.NoError(t, err)
	assert.Equal(t, MaxNotificationLimit, gotLimit)
}

func TestDispatch_QueuesEmailAndPushes(t *testing.T) {
	users := &mockUserRepo{findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Email: "kay@example.com", Name: "Kay"}, nil
	}}
	pub := &recordingPublisher{}
	rt := &recordingRealtime{}
	d := NewNotificationDispatcher(users, pub, rt, "https://musiconnect.app")

	d.Dispatch(context.Background(), &models.Notification{ID: 3, UserID: 20, Title: "New booking request", Message: "hi", Link: "/bookings/1"})

	require.Len(t, rt.events, 1)
	assert.Equal(t, realtimeEvent{userID: 20, kind: "notification"}, rt.events[0])
	require.Len(t, pub.keys, 1)
	assert.Equal(t, rabbitmq.RoutingKeyEmail, pub.keys[0])
	msg := pub.payloads[0].(dto.EmailMessage)
	assert.Equal(t, "kay@example.com", msg.To)
	assert.Equal(t, "New booking request", msg.Subject)
	assert.Equal(t, "https://musiconnect.app/bookings/1", msg.Link)
}

func TestDispatch_SkipsUsersWithoutEmail(t *testing.T) {
	users := &mockUserRepo{findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
		return nil, gorm.ErrRecordNotFound
	}}
	pub := &recordingPublisher{}
	d := NewNotificationDispatcher(users, pub, nil, "")

	d.Dispatch(context.Background(), &models.Notification{ID: 3, UserID: 20})

	assert.Empty(t, pub.keys)
}

func TestDispatch_PublishFailureIsSwallowed(t *testing.T) {
	users := &mockUserRepo{findByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Email: "kay@example.com"}, nil
	}}
	pub := &recordingPublisher{err: errors.New("channel closed")}
	d := NewNotificationDispatcher(users, pub, nil, "")

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), &models.Notification{ID: 3, UserID: 20})
	})
	assert.Len(t, pub.keys, 1)
}
