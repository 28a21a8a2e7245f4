package repository

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, userX, userY uint) (*models.Conversation, error)
	FindByID(ctx context.Context, id uint) (*models.Conversation, error)
	FindForUser(ctx context.Context, userID uint) ([]models.Conversation, error)
	LastMessages(ctx context.Context, conversationIDs []uint) (map[uint]models.Message, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, conv *models.Conversation, userID, seenUpTo uint) error
	AddMessage(ctx context.Context, conv *models.Conversation, msg *models.Message) error
	ListMessages(ctx context.Context, conversationID, afterID uint, limit int) ([]models.Message, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) FindOrCreate(ctx context.Context, userX, userY uint) (*models.Conversation, error) {
	a, b := models.OrderedPair(userX, userY)
	conv := models.Conversation{UserAID: a, UserBID: b, ReadByA: true, ReadByB: true}

	// two users opening the chat at once must land on the same row
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Omit("UserA", "UserB").
		Create(&conv).Error
	if err != nil {
		return nil, err
	}

	var found models.Conversation
	err = r.db.WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&found).Error
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).Preload("UserA").Preload("UserB").First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) FindForUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Preload("UserA").
		Preload("UserB").
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("COALESCE(last_message_at, created_at) DESC, id DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepository) LastMessages(ctx context.Context, conversationIDs []uint) (map[uint]models.Message, error) {
	out := make(map[uint]models.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return out, nil
	}

	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (conversation_id) * FROM messages
			WHERE conversation_id IN ? ORDER BY conversation_id, id DESC`, conversationIDs).
		Scan(&msgs).Error
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		out[m.ConversationID] = m
	}
	return out, nil
}

func (r *conversationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("(user_a_id = ? AND read_by_a = false) OR (user_b_id = ? AND read_by_b = false)", userID, userID).
		Count(&count).Error
	return count, err
}

// MarkRead flags conv read for userID. A non-zero seenUpTo only marks it read
// when no message from the other side is newer than that message id.
func (r *conversationRepository) MarkRead(ctx context.Context, conv *models.Conversation, userID, seenUpTo uint) error {
	column := "read_by_b"
	if conv.UserAID == userID {
		column = "read_by_a"
	}
	q := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", conv.ID)
	if seenUpTo > 0 {
		q = q.Where(
			"NOT EXISTS (SELECT 1 FROM messages WHERE messages.conversation_id = conversations.id AND messages.id > ? AND messages.sender_id <> ?)",
			seenUpTo, userID,
		)
	}
	return q.Update(column, true).Error
}

// AddMessage stores msg and flags the conversation unread for the recipient.
func (r *conversationRepository) AddMessage(ctx context.Context, conv *models.Conversation, msg *models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		updates := map[string]any{"last_message_at": msg.CreatedAt}
		if conv.UserAID == msg.SenderID {
			updates["read_by_a"] = true
			updates["read_by_b"] = false
		} else {
			updates["read_by_a"] = false
			updates["read_by_b"] = true
		}
		return tx.Model(&models.Conversation{}).Where("id = ?", conv.ID).Updates(updates).Error
	})
}

func (r *conversationRepository) ListMessages(ctx context.Context, conversationID, afterID uint, limit int) ([]models.Message, error) {
	var msgs []models.Message
	q := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID)
	if afterID > 0 {
		q = q.Where("id > ?", afterID)
	}
	if err := q.Order("id ASC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
