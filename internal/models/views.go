package models

// ConversationSummary is one row of a user's inbox.
type ConversationSummary struct {
	Conversation Conversation
	Other        *User
	LastMessage  *Message
	Unread       bool
}

type PlatformStats struct {
	Users       int64
	Musicians   int64
	Bookers     int64
	Bookings    map[BookingStatus]int64
	Subscribers int64
	Suggestions int64
}

type LandingData struct {
	FeaturedMusicians []MusicianWithRating
	Announcements     []Announcement
	MusicianCount     int64
	CompletedBookings int64
}
