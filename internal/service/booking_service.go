package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/monitoring"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const (
	SideClient   = "client"
	SideMusician = "musician"
)

type BookingService interface {
	CreateBooking(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, user *models.User, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, user *models.User, side, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error)
}

type bookingService struct {
	tx            repository.TxRunner
	bookings      repository.BookingRepository
	musicians     repository.MusicianRepository
	notifications repository.NotificationRepository
	dispatcher    NotificationDispatcher
	now           func() time.Time
}

func NewBookingService(
	tx repository.TxRunner,
	bookings repository.BookingRepository,
	musicians repository.MusicianRepository,
	notifications repository.NotificationRepository,
	dispatcher NotificationDispatcher,
) BookingService {
	return &bookingService{
		tx:            tx,
		bookings:      bookings,
		musicians:     musicians,
		notifications: notifications,
		dispatcher:    dispatcher,
		now:           time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error) {
	if !client.HasRole(models.RoleBooker) {
		return nil, ErrBookerRoleRequired
	}
	if err := s.validateCreate(&req); err != nil {
		return nil, err
	}

	musician, err := s.musicians.FindByID(ctx, req.MusicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMusicianNotFound
		}
		return nil, err
	}
	if musician.UserID == client.ID {
		return nil, ErrSelfBooking
	}

	booking := &models.Booking{
		ClientID:      client.ID,
		MusicianID:    musician.ID,
		EventType:     req.EventType,
		EventDate:     req.EventDate.UTC(),
		Location:      req.Location,
		DurationHours: req.DurationHours,
		Budget:        req.Budget.Round(2),
		Notes:         req.Notes,
		Status:        models.StatusPending,
	}

	var notif *models.Notification
	err = s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		notif = bookingRequestNotification(booking, musician, client)
		if err := s.notifications.Create(ctx, tx, notif); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Bookings] booking %d created by user %d for musician %d", booking.ID, client.ID, musician.ID)
	monitoring.TrackBookingCreated()
	s.dispatcher.Dispatch(ctx, notif)

	booking.Client = client
	booking.Musician = musician
	return booking, nil
}

func (s *bookingService) validateCreate(req *dto.CreateBookingRequest) error {
	req.EventType = strings.TrimSpace(req.EventType)
	req.Location = strings.TrimSpace(req.Location)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.MusicianID == 0 {
		return validationError("musician_id is required")
	}
	if req.EventType == "" {
		return validationError("event_type is required")
	}
	if req.EventDate.IsZero() {
		return validationError("event_date is required")
	}
	if !req.EventDate.After(s.now()) {
		return validationError("event_date must be in the future")
	}
	if req.DurationHours < 0 {
		return validationError("duration_hours cannot be negative")
	}
	if req.Budget.IsNegative() {
		return validationError("budget cannot be negative")
	}
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, user *models.User, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if _, ok := partyOf(user, booking); !ok {
		return nil, ErrNotBookingParty
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, user *models.User, side, status string) ([]models.Booking, error) {
	var filter *models.BookingStatus
	if status != "" {
		st := models.BookingStatus(strings.ToUpper(status))
		if !st.Valid() {
			return nil, validationError("unknown booking status")
		}
		filter = &st
	}

	if side == "" {
		side = SideClient
		if role, ok := user.CurrentRole(); ok && role == models.RoleMusician {
			side = SideMusician
		}
	}

	switch side {
	case SideClient:
		return s.bookings.FindByClient(ctx, user.ID, filter)
	case SideMusician:
		if user.Musician == nil {
			return []models.Booking{}, nil
		}
		return s.bookings.FindByMusician(ctx, user.Musician.ID, filter)
	default:
		return nil, validationError("as must be client or musician")
	}
}

// UpdateStatus applies one transition from the booking state table. The write
// only lands if the booking still has the status it was read with.
func (s *bookingService) UpdateStatus(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error) {
	to := models.BookingStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !to.Valid() {
		return nil, validationError("unknown booking status")
	}

	booking, err := s.GetBooking(ctx, user, id)
	if err != nil {
		return nil, err
	}
	party, _ := partyOf(user, booking)

	from := booking.Status
	exists, allowed := models.CanTransition(from, to, party)
	if !exists {
		return nil, ErrInvalidTransition
	}
	if !allowed {
		return nil, ErrTransitionForbidden
	}

	var notif *models.Notification
	err = s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		ok, err := s.bookings.UpdateStatus(ctx, tx, booking.ID, from, to)
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		if !ok {
			return ErrStatusConflict
		}
		booking.Status = to
		notif = statusNotification(booking, party, user)
		if err := s.notifications.Create(ctx, tx, notif); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Bookings] booking %d moved %s -> %s by user %d", booking.ID, from, to, user.ID)
	monitoring.TrackBookingTransition(string(from), string(to))
	s.dispatcher.Dispatch(ctx, notif)
	return booking, nil
}

// partyOf reports which side of booking user is on.
func partyOf(user *models.User, booking *models.Booking) (models.BookingParty, bool) {
	if booking.ClientID == user.ID {
		return models.PartyClient, true
	}
	if booking.Musician != nil && booking.Musician.UserID == user.ID {
		return models.PartyMusician, true
	}
	if user.Musician != nil && user.Musician.ID == booking.MusicianID {
		return models.PartyMusician, true
	}
	return "", false
}
