package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoleRequest struct {
	Role string `json:"role"`
}

// MusicianProfileRequest is used for both setup and edit; nil fields are left
// unchanged on edit.
type MusicianProfileRequest struct {
	StageName    *string          `json:"stage_name"`
	Bio          *string          `json:"bio"`
	Location     *string          `json:"location"`
	Genres       []string         `json:"genres"`
	Instruments  []string         `json:"instruments"`
	Services     []string         `json:"services"`
	MediaURLs    []string         `json:"media_urls"`
	ProfileImage *string          `json:"profile_image"`
	CoverImage   *string          `json:"cover_image"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate"`
}

type BookerProfileRequest struct {
	Name         *string  `json:"name"`
	Organization *string  `json:"organization"`
	Bio          *string  `json:"bio"`
	Location     *string  `json:"location"`
	ProfileImage *string  `json:"profile_image"`
	Images       []string `json:"images"`
}

type CreateBookingRequest struct {
	MusicianID    uint            `json:"musician_id"`
	EventType     string          `json:"event_type"`
	EventDate     time.Time       `json:"event_date"`
	Location      string          `json:"location"`
	DurationHours int             `json:"duration_hours"`
	Budget        decimal.Decimal `json:"budget"`
	Notes         string          `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type StartConversationRequest struct {
	ParticipantID uint `json:"participant_id"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AnnouncementRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Active *bool  `json:"active"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type SuggestionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
