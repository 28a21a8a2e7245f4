package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MusicianID uint      `gorm:"not null;uniqueIndex:idx_review_author" json:"musician_id"`
	AuthorID   uint      `gorm:"not null;uniqueIndex:idx_review_author" json:"author_id"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}
