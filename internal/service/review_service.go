package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const maxCommentLength = 2000

type ReviewService interface {
	Create(ctx context.Context, author *models.User, musicianID uint, req dto.CreateReviewRequest) (*models.Review, error)
	List(ctx context.Context, musicianID uint) ([]models.Review, models.RatingSummary, error)
}

type reviewService struct {
	tx            repository.TxRunner
	reviews       repository.ReviewRepository
	musicians     repository.MusicianRepository
	notifications repository.NotificationRepository
	dispatcher    NotificationDispatcher
}

func NewReviewService(
	tx repository.TxRunner,
	reviews repository.ReviewRepository,
	musicians repository.MusicianRepository,
	notifications repository.NotificationRepository,
	dispatcher NotificationDispatcher,
) ReviewService {
	return &reviewService{
		tx:            tx,
		reviews:       reviews,
		musicians:     musicians,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *reviewService) Create(ctx context.Context, author *models.User, musicianID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, validationError("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return nil, validationError("comment is too long")
	}

	musician, err := s.musicians.FindByID(ctx, musicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMusicianNotFound
		}
		return nil, err
	}
	if musician.UserID == author.ID {
		return nil, ErrSelfReview
	}

	review := &models.Review{
		MusicianID: musician.ID,
		AuthorID:   author.ID,
		Rating:     req.Rating,
		Comment:    comment,
	}

	var notif *models.Notification
	err = s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.reviews.Create(ctx, tx, review); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("create review: %w", err)
		}
		notif = reviewNotification(review, musician, author)
		if err := s.notifications.Create(ctx, tx, notif); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, notif)
	review.Author = author
	return review, nil
}

func (s *reviewService) List(ctx context.Context, musicianID uint) ([]models.Review, models.RatingSummary, error) {
	if _, err := s.musicians.FindByID(ctx, musicianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.RatingSummary{}, ErrMusicianNotFound
		}
		return nil, models.RatingSummary{}, err
	}

	reviews, err := s.reviews.FindByMusician(ctx, musicianID)
	if err != nil {
		return nil, models.RatingSummary{}, err
	}
	summary, err := s.reviews.Summary(ctx, musicianID)
	if err != nil {
		return nil, models.RatingSummary{}, err
	}
	return reviews, summary, nil
}
