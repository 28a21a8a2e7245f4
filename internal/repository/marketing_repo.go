package repository

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
)

type MarketingRepository interface {
	CreateSubscriber(ctx context.Context, s *models.Subscriber) error
	CreateSuggestion(ctx context.Context, s *models.Suggestion) error
	ListSubscribers(ctx context.Context) ([]models.Subscriber, error)
	ListSuggestions(ctx context.Context) ([]models.Suggestion, error)
	CountSubscribers(ctx context.Context) (int64, error)
	CountSuggestions(ctx context.Context) (int64, error)
	CountCompletedBookings(ctx context.Context) (int64, error)
}

type marketingRepository struct {
	db *gorm.DB
}

func NewMarketingRepository(db *gorm.DB) MarketingRepository {
	return &marketingRepository{db: db}
}

func (r *marketingRepository) CreateSubscriber(ctx context.Context, s *models.Subscriber) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *marketingRepository) CreateSuggestion(ctx context.Context, s *models.Suggestion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *marketingRepository) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	var out []models.Subscriber
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *marketingRepository) ListSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	var out []models.Suggestion
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *marketingRepository) CountSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}

func (r *marketingRepository) CountSuggestions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Suggestion{}).Count(&count).Error
	return count, err
}

func (r *marketingRepository) CountCompletedBookings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", models.StatusCompleted).
		Count(&count).Error
	return count, err
}
