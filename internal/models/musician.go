package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Musician struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	StageName    string          `gorm:"not null" json:"stage_name"`
	Bio          string          `json:"bio"`
	Location     string          `gorm:"index" json:"location"`
	Genres       pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"genres"`
	Instruments  pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"instruments"`
	Services     pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"services"`
	MediaURLs    pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"media_urls"`
	ProfileImage string          `json:"profile_image"`
	CoverImage   string          `json:"cover_image"`
	HourlyRate   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"hourly_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// MusicianWithRating is a musician row joined with its review aggregate.
type MusicianWithRating struct {
	Musician
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}
