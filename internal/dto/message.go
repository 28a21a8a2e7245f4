package dto

// EmailMessage is the queue payload for one notification email.
type EmailMessage struct {
	NotificationID uint   `json:"notification_id"`
	To             string `json:"to"`
	Name           string `json:"name"`
	Subject        string `json:"subject"`
	Text           string `json:"text"`
	Link           string `json:"link,omitempty"`
}
