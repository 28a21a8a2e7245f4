package models

import "time"

// Conversation is stored with UserAID < UserBID so a pair maps to one row.
type Conversation struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserAID       uint       `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_a_id"`
	UserBID       uint       `gorm:"not null;uniqueIndex:idx_conversation_pair" json:"user_b_id"`
	ReadByA       bool       `gorm:"not null;default:true" json:"read_by_a"`
	ReadByB       bool       `gorm:"not null;default:true" json:"read_by_b"`
	LastMessageAt *time.Time `gorm:"index" json:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	UserA *User `gorm:"foreignKey:UserAID" json:"-"`
	UserB *User `gorm:"foreignKey:UserBID" json:"-"`
}

func (c *Conversation) HasParticipant(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// OtherParticipant returns the id on the opposite side from userID.
func (c *Conversation) OtherParticipant(userID uint) uint {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

func (c *Conversation) ReadBy(userID uint) bool {
	if c.UserAID == userID {
		return c.ReadByA
	}
	return c.ReadByB
}

// OrderedPair normalises two user ids into the stored (a, b) order.
func OrderedPair(x, y uint) (uint, uint) {
	if x < y {
		return x, y
	}
	return y, x
}

type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint      `gorm:"not null" json:"sender_id"`
	Text           string    `gorm:"not null" json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}
