package repository

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *models.Review) error
	FindByMusician(ctx context.Context, musicianID uint) ([]models.Review, error)
	Summary(ctx context.Context, musicianID uint) (models.RatingSummary, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, tx *gorm.DB, review *models.Review) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Author").Create(review).Error
}

func (r *reviewRepository) FindByMusician(ctx context.Context, musicianID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("musician_id = ?", musicianID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Summary(ctx context.Context, musicianID uint) (models.RatingSummary, error) {
	var s models.RatingSummary
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("musician_id = ?", musicianID).
		Scan(&s).Error
	return s, err
}
