package models

// All lists every table in migration order.
func All() []any {
	return []any{
		&User{},
		&Musician{},
		&Booker{},
		&Booking{},
		&Conversation{},
		&Message{},
		&Review{},
		&Notification{},
		&Admin{},
		&Announcement{},
		&Subscriber{},
		&Suggestion{},
	}
}
