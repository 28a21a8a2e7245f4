package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusAccepted  BookingStatus = "ACCEPTED"
	StatusDeclined  BookingStatus = "DECLINED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BookingParty identifies which side of a booking is acting.
type BookingParty string

const (
	PartyClient   BookingParty = "client"
	PartyMusician BookingParty = "musician"
)

type transition struct {
	from BookingStatus
	to   BookingStatus
}

var bookingTransitions = map[transition][]BookingParty{
	{StatusPending, StatusAccepted}:   {PartyMusician},
	{StatusPending, StatusDeclined}:   {PartyMusician},
	{StatusPending, StatusCancelled}:  {PartyClient},
	{StatusAccepted, StatusCancelled}: {PartyClient, PartyMusician},
	{StatusAccepted, StatusCompleted}: {PartyClient, PartyMusician},
}

// CanTransition reports whether from -> to exists at all and, if so, whether
// party may perform it.
func CanTransition(from, to BookingStatus, party BookingParty) (exists, allowed bool) {
	parties, ok := bookingTransitions[transition{from, to}]
	if !ok {
		return false, false
	}
	for _, p := range parties {
		if p == party {
			return true, true
		}
	}
	return true, false
}

type Booking struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ClientID      uint            `gorm:"not null;index" json:"client_id"`
	MusicianID    uint            `gorm:"not null;index" json:"musician_id"`
	EventType     string          `gorm:"not null" json:"event_type"`
	EventDate     time.Time       `gorm:"not null" json:"event_date"`
	Location      string          `json:"location"`
	DurationHours int             `json:"duration_hours"`
	Budget        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"budget"`
	Notes         string          `json:"notes"`
	Status        BookingStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Client   *User     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Musician *Musician `gorm:"foreignKey:MusicianID" json:"musician,omitempty"`
}
