package models

import (
	"time"

	"github.com/lib/pq"
)

type Booker struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string         `gorm:"not null" json:"name"`
	Organization string         `json:"organization"`
	Bio          string         `json:"bio"`
	Location     string         `json:"location"`
	ProfileImage string         `json:"profile_image"`
	Images       pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"images"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
