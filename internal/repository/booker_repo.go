package repository

import (
	"context"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"gorm.io/gorm"
)

type BookerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booker *models.Booker) error
	Update(ctx context.Context, booker *models.Booker) error
	FindByID(ctx context.Context, id uint) (*models.Booker, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Booker, error)
	Count(ctx context.Context) (int64, error)
}

type bookerRepository struct {
	db *gorm.DB
}

func NewBookerRepository(db *gorm.DB) BookerRepository {
	return &bookerRepository{db: db}
}

func (r *bookerRepository) Create(ctx context.Context, tx *gorm.DB, booker *models.Booker) error {
	return conn(r.db, tx).WithContext(ctx).Create(booker).Error
}

func (r *bookerRepository) Update(ctx context.Context, booker *models.Booker) error {
	return r.db.WithContext(ctx).Omit("User").Save(booker).Error
}

func (r *bookerRepository) FindByID(ctx context.Context, id uint) (*models.Booker, error) {
	var booker models.Booker
	if err := r.db.WithContext(ctx).First(&booker, id).Error; err != nil {
		return nil, err
	}
	return &booker, nil
}

func (r *bookerRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booker, error) {
	var booker models.Booker
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&booker).Error; err != nil {
		return nil, err
	}
	return &booker, nil
}

func (r *bookerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booker{}).Count(&count).Error
	return count, err
}
