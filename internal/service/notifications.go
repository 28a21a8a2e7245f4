package service

import (
	"encoding/json"
	"fmt"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/datatypes"
)

const eventDateLayout = "Jan 2, 2006"

func newNotification(userID uint, kind models.NotificationType, title, message, link string, data map[string]any) *models.Notification {
	n := &models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Link:    link,
	}
	if len(data) > 0 {
		if raw, err := json.Marshal(data); err == nil {
			n.Data = datatypes.JSON(raw)
		}
	}
	return n
}

func bookingLink(id uint) string {
	return fmt.Sprintf("/bookings/%d", id)
}

func displayName(u *models.User) string {
	if u == nil {
		return "Someone"
	}
	if u.Booker != nil && u.Booker.Name != "" {
		return u.Booker.Name
	}
	if u.Name != "" {
		return u.Name
	}
	return "Someone"
}

func bookingRequestNotification(b *models.Booking, musician *models.Musician, client *models.User) *models.Notification {
	return newNotification(
		musician.UserID,
		models.NotifBookingRequest,
		"New booking request",
		fmt.Sprintf("%s wants to book you for %s on %s.", displayName(client), b.EventType, b.EventDate.Format(eventDateLayout)),
		bookingLink(b.ID),
		map[string]any{"booking_id": b.ID, "status": b.Status},
	)
}

var statusNotificationTypes = map[models.BookingStatus]models.NotificationType{
	models.StatusAccepted:  models.NotifBookingAccepted,
	models.StatusDeclined:  models.NotifBookingDeclined,
	models.StatusCancelled: models.NotifBookingCancelled,
	models.StatusCompleted: models.NotifBookingCompleted,
}

// statusNotification addresses the party that did not make the change.
func statusNotification(b *models.Booking, actor models.BookingParty, actorUser *models.User) *models.Notification {
	recipient := b.ClientID
	actorName := displayName(actorUser)
	if actor == models.PartyClient {
		if b.Musician != nil {
			recipient = b.Musician.UserID
		}
	} else if b.Musician != nil && b.Musician.StageName != "" {
		actorName = b.Musician.StageName
	}

	verb := map[models.BookingStatus]string{
		models.StatusAccepted:  "accepted",
		models.StatusDeclined:  "declined",
		models.StatusCancelled: "cancelled",
		models.StatusCompleted: "marked as completed",
	}[b.Status]

	return newNotification(
		recipient,
		statusNotificationTypes[b.Status],
		fmt.Sprintf("Booking %s", verb),
		fmt.Sprintf("%s %s the booking for %s on %s.", actorName, verb, b.EventType, b.EventDate.Format(eventDateLayout)),
		bookingLink(b.ID),
		map[string]any{"booking_id": b.ID, "status": b.Status},
	)
}

func reviewNotification(r *models.Review, musician *models.Musician, author *models.User) *models.Notification {
	return newNotification(
		musician.UserID,
		models.NotifNewReview,
		"New review",
		fmt.Sprintf("%s left you a %d-star review.", displayName(author), r.Rating),
		fmt.Sprintf("/musicians/%d", musician.ID),
		map[string]any{"review_id": r.ID, "rating": r.Rating},
	)
}
