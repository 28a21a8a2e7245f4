package dto

import (
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type MeResponse struct {
	ID                 uint         `json:"id"`
	Email              string       `json:"email"`
	Name               string       `json:"name"`
	ImageURL           string       `json:"image_url"`
	Roles              []string     `json:"roles"`
	ActiveRole         *models.Role `json:"active_role"`
	HasMusicianProfile bool         `json:"has_musician_profile"`
	HasBookerProfile   bool         `json:"has_booker_profile"`
	MusicianID         *uint        `json:"musician_id,omitempty"`
	BookerID           *uint        `json:"booker_id,omitempty"`
	Redirect           string       `json:"redirect"`
}

func ToMeResponse(u *models.User, redirect string) MeResponse {
	resp := MeResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		ImageURL:   u.ImageURL,
		Roles:      nonNil(u.Roles),
		ActiveRole: u.ActiveRole,
		Redirect:   redirect,
	}
	if u.Musician != nil {
		resp.HasMusicianProfile = true
		resp.MusicianID = &u.Musician.ID
	}
	if u.Booker != nil {
		resp.HasBookerProfile = true
		resp.BookerID = &u.Booker.ID
	}
	return resp
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func ToUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, ImageURL: u.ImageURL}
}

type MusicianResponse struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"user_id"`
	StageName     string          `json:"stage_name"`
	Bio           string          `json:"bio"`
	Location      string          `json:"location"`
	Genres        []string        `json:"genres"`
	Instruments   []string        `json:"instruments"`
	Services      []string        `json:"services"`
	MediaURLs     []string        `json:"media_urls"`
	ProfileImage  string          `json:"profile_image"`
	CoverImage    string          `json:"cover_image"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	AverageRating *float64        `json:"average_rating,omitempty"`
	ReviewCount   *int64          `json:"review_count,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToMusicianResponse(m *models.Musician) MusicianResponse {
	return MusicianResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		StageName:    m.StageName,
		Bio:          m.Bio,
		Location:     m.Location,
		Genres:       nonNil(m.Genres),
		Instruments:  nonNil(m.Instruments),
		Services:     nonNil(m.Services),
		MediaURLs:    nonNil(m.MediaURLs),
		ProfileImage: m.ProfileImage,
		CoverImage:   m.CoverImage,
		HourlyRate:   m.HourlyRate,
		CreatedAt:    m.CreatedAt,
	}
}

func ToRatedMusicianResponse(m *models.MusicianWithRating) MusicianResponse {
	resp := ToMusicianResponse(&m.Musician)
	avg, count := m.AverageRating, m.ReviewCount
	resp.AverageRating = &avg
	resp.ReviewCount = &count
	return resp
}

type MusicianListResponse struct {
	Items  []MusicianResponse `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type MusicianSummary struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	StageName    string `json:"stage_name"`
	ProfileImage string `json:"profile_image"`
}

func ToMusicianSummary(m *models.Musician) *MusicianSummary {
	if m == nil {
		return nil
	}
	return &MusicianSummary{ID: m.ID, UserID: m.UserID, StageName: m.StageName, ProfileImage: m.ProfileImage}
}

type BookerResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	ProfileImage string    `json:"profile_image"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToBookerResponse(b *models.Booker) BookerResponse {
	return BookerResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		Name:         b.Name,
		Organization: b.Organization,
		Bio:          b.Bio,
		Location:     b.Location,
		ProfileImage: b.ProfileImage,
		Images:       nonNil(b.Images),
		CreatedAt:    b.CreatedAt,
	}
}

type BookingResponse struct {
	ID            uint                 `json:"id"`
	ClientID      uint                 `json:"client_id"`
	MusicianID    uint                 `json:"musician_id"`
	EventType     string               `json:"event_type"`
	EventDate     time.Time            `json:"event_date"`
	Location      string               `json:"location"`
	DurationHours int                  `json:"duration_hours"`
	Budget        decimal.Decimal      `json:"budget"`
	Notes         string               `json:"notes"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Client        *UserSummary         `json:"client,omitempty"`
	Musician      *MusicianSummary     `json:"musician,omitempty"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		MusicianID:    b.MusicianID,
		EventType:     b.EventType,
		EventDate:     b.EventDate,
		Location:      b.Location,
		DurationHours: b.DurationHours,
		Budget:        b.Budget,
		Notes:         b.Notes,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Client:        ToUserSummary(b.Client),
		Musician:      ToMusicianSummary(b.Musician),
	}
}

type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

type ConversationResponse struct {
	ID            uint             `json:"id"`
	Participant   *UserSummary     `json:"participant"`
	LastMessage   *MessageResponse `json:"last_message,omitempty"`
	LastMessageAt *time.Time       `json:"last_message_at"`
	Unread        bool             `json:"unread"`
	CreatedAt     time.Time        `json:"created_at"`
}

func ToConversationResponse(s *models.ConversationSummary) ConversationResponse {
	resp := ConversationResponse{
		ID:            s.Conversation.ID,
		Participant:   ToUserSummary(s.Other),
		LastMessageAt: s.Conversation.LastMessageAt,
		Unread:        s.Unread,
		CreatedAt:     s.Conversation.CreatedAt,
	}
	if s.LastMessage != nil {
		m := ToMessageResponse(s.LastMessage)
		resp.LastMessage = &m
	}
	return resp
}

type ReviewResponse struct {
	ID         uint         `json:"id"`
	MusicianID uint         `json:"musician_id"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	Author     *UserSummary `json:"author,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		MusicianID: r.MusicianID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Author:     ToUserSummary(r.Author),
		CreatedAt:  r.CreatedAt,
	}
}

type ReviewListResponse struct {
	Items         []ReviewResponse `json:"items"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
}

type NotificationResponse struct {
	ID        uint                    `json:"id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Link      string                  `json:"link,omitempty"`
	Data      datatypes.JSON          `json:"data,omitempty"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type AnnouncementResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToAnnouncementResponses(list []models.Announcement) []AnnouncementResponse {
	resp := make([]AnnouncementResponse, len(list))
	for i := range list {
		resp[i] = ToAnnouncementResponse(&list[i])
	}
	return resp
}

type StatsResponse struct {
	Users       int64                          `json:"users"`
	Musicians   int64                          `json:"musicians"`
	Bookers     int64                          `json:"bookers"`
	Bookings    map[models.BookingStatus]int64 `json:"bookings"`
	Subscribers int64                          `json:"subscribers"`
	Suggestions int64                          `json:"suggestions"`
}

func ToStatsResponse(s *models.PlatformStats) StatsResponse {
	bookings := make(map[models.BookingStatus]int64, 5)
	for _, st := range []models.BookingStatus{
		models.StatusPending, models.StatusAccepted, models.StatusDeclined,
		models.StatusCancelled, models.StatusCompleted,
	} {
		bookings[st] = s.Bookings[st]
	}
	return StatsResponse{
		Users:       s.Users,
		Musicians:   s.Musicians,
		Bookers:     s.Bookers,
		Bookings:    bookings,
		Subscribers: s.Subscribers,
		Suggestions: s.Suggestions,
	}
}

type LandingResponse struct {
	FeaturedMusicians []MusicianResponse     `json:"featured_musicians"`
	Announcements     []AnnouncementResponse `json:"announcements"`
	MusicianCount     int64                  `json:"musician_count"`
	CompletedBookings int64                  `json:"completed_bookings"`
}

func ToLandingResponse(l *models.LandingData) LandingResponse {
	featured := make([]MusicianResponse, len(l.FeaturedMusicians))
	for i := range l.FeaturedMusicians {
		featured[i] = ToRatedMusicianResponse(&l.FeaturedMusicians[i])
	}
	return LandingResponse{
		FeaturedMusicians: featured,
		Announcements:     ToAnnouncementResponses(l.Announcements),
		MusicianCount:     l.MusicianCount,
		CompletedBookings: l.CompletedBookings,
	}
}

type SubscriberResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SuggestionResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func nonNil[S ~[]string](s S) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
