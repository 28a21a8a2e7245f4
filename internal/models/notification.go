package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotifBookingRequest   NotificationType = "BOOKING_REQUEST"
	NotifBookingAccepted  NotificationType = "BOOKING_ACCEPTED"
	NotifBookingDeclined  NotificationType = "BOOKING_DECLINED"
	NotifBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotifBookingCompleted NotificationType = "BOOKING_COMPLETED"
	NotifNewReview        NotificationType = "NEW_REVIEW"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	Data      datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"`
	Read      bool             `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
