package repository

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByClient(ctx context.Context, clientID uint, status *models.BookingStatus) ([]models.Booking, error)
	FindByMusician(ctx context.Context, musicianID uint, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, from, to models.BookingStatus) (bool, error)
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Client", "Musician").Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Musician").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByClient(ctx context.Context, clientID uint, status *models.BookingStatus) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Musician").Where("client_id = ?", clientID)
	return r.list(q, status)
}

func (r *bookingRepository) FindByMusician(ctx context.Context, musicianID uint, status *models.BookingStatus) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Client").Where("musician_id = ?", musicianID)
	return r.list(q, status)
}

func (r *bookingRepository) list(q *gorm.DB, status *models.BookingStatus) ([]models.Booking, error) {
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var bookings []models.Booking
	if err := q.Order("event_date DESC, id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves a booking only if it is still in the from status.
// It reports false when another request changed the booking first.
func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, from, to models.BookingStatus) (bool, error) {
	res := conn(r.db, tx).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	var rows []struct {
		Status models.BookingStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
