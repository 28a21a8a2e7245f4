package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/monitoring"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const (
	MaxMessageLength     = 2000
	DefaultMessagesLimit = 50
	MaxMessagesLimit     = 200
)

type ConversationService interface {
	Start(ctx context.Context, user *models.User, participantID uint) (*models.ConversationSummary, error)
	List(ctx context.Context, user *models.User) ([]models.ConversationSummary, error)
	UnreadCount(ctx context.Context, user *models.User) (int64, error)
	Messages(ctx context.Context, user *models.User, conversationID, afterID uint, limit int) ([]models.Message, error)
	Send(ctx context.Context, user *models.User, conversationID uint, text string) (*models.Message, error)
	MarkRead(ctx context.Context, user *models.User, conversationID uint) error
}

type conversationService struct {
	conversations repository.ConversationRepository
	users         repository.UserRepository
	realtime      RealtimePublisher
	now           func() time.Time
}

// NewConversationService accepts a nil realtime publisher; clients then rely on polling alone.
func NewConversationService(conversations repository.ConversationRepository, users repository.UserRepository, realtime RealtimePublisher) ConversationService {
	return &conversationService{
		conversations: conversations,
		users:         users,
		realtime:      realtime,
		now:           time.Now,
	}
}

func (s *conversationService) Start(ctx context.Context, user *models.User, participantID uint) (*models.ConversationSummary, error) {
	if participantID == 0 {
		return nil, validationError("participant_id is required")
	}
	if participantID == user.ID {
		return nil, ErrSelfConversation
	}
	if _, err := s.users.FindByID(ctx, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	conv, err := s.conversations.FindOrCreate(ctx, user.ID, participantID)
	if err != nil {
		return nil, fmt.Errorf("find or create conversation: %w", err)
	}

	last, err := s.conversations.LastMessages(ctx, []uint{conv.ID})
	if err != nil {
		return nil, err
	}
	summary := summarize(*conv, user.ID, last)
	return &summary, nil
}

func (s *conversationService) List(ctx context.Context, user *models.User) ([]models.ConversationSummary, error) {
	convs, err := s.conversations.FindForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(convs))
	for i, c := range convs {
		ids[i] = c.ID
	}
	last, err := s.conversations.LastMessages(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		out = append(out, summarize(c, user.ID, last))
	}
	return out, nil
}

func summarize(c models.Conversation, userID uint, last map[uint]models.Message) models.ConversationSummary {
	summary := models.ConversationSummary{
		Conversation: c,
		Other:        c.UserB,
		Unread:       !c.ReadBy(userID),
	}
	if c.UserBID == userID {
		summary.Other = c.UserA
	}
	if m, ok := last[c.ID]; ok {
		summary.LastMessage = &m
	}
	return summary
}

func (s *conversationService) UnreadCount(ctx context.Context, user *models.User) (int64, error) {
	return s.conversations.CountUnread(ctx, user.ID)
}

func (s *conversationService) participantConversation(ctx context.Context, user *models.User, id uint) (*models.Conversation, error) {
	conv, err := s.conversations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	if !conv.HasParticipant(user.ID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

// Messages returns messages after afterID in ascending order and marks the
// conversation read for the caller once the page reaches the newest message.
func (s *conversationService) Messages(ctx context.Context, user *models.User, conversationID, afterID uint, limit int) ([]models.Message, error) {
	conv, err := s.participantConversation(ctx, user, conversationID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMessagesLimit
	}
	if limit > MaxMessagesLimit {
		limit = MaxMessagesLimit
	}

	msgs, err := s.conversations.ListMessages(ctx, conv.ID, afterID, limit)
	if err != nil {
		return nil, err
	}
	// a full page may leave older unread messages behind, and anything sent
	// after the listing must stay unread
	if !conv.ReadBy(user.ID) && len(msgs) > 0 && len(msgs) < limit {
		if err := s.conversations.MarkRead(ctx, conv, user.ID, msgs[len(msgs)-1].ID); err != nil {
			return nil, fmt.Errorf("mark conversation read: %w", err)
		}
	}
	return msgs, nil
}

func (s *conversationService) Send(ctx context.Context, user *models.User, conversationID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("text is required")
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, validationError(fmt.Sprintf("text cannot exceed %d characters", MaxMessageLength))
	}

	conv, err := s.participantConversation(ctx, user, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       user.ID,
		Text:           text,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.conversations.AddMessage(ctx, conv, msg); err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}

	monitoring.TrackMessageSent()
	if s.realtime != nil {
		s.realtime.Publish(conv.OtherParticipant(user.ID), "message", dto.ToMessageResponse(msg))
	}
	return msg, nil
}

func (s *conversationService) MarkRead(ctx context.Context, user *models.User, conversationID uint) error {
	conv, err := s.participantConversation(ctx, user, conversationID)
	if err != nil {
		return err
	}
	return s.conversations.MarkRead(ctx, conv, user.ID, 0)
}
