package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const (
	featuredMusicians       = 6
	maxSuggestionLength     = 5000
	landingAnnouncementSize = 3
)

type MarketingService interface {
	Subscribe(ctx context.Context, email string) (*models.Subscriber, error)
	Suggest(ctx context.Context, name, email, message string) (*models.Suggestion, error)
	Landing(ctx context.Context) (*models.LandingData, error)
}

type marketingService struct {
	marketing     repository.MarketingRepository
	musicians     repository.MusicianRepository
	announcements repository.AnnouncementRepository
}

func NewMarketingService(marketing repository.MarketingRepository, musicians repository.MusicianRepository, announcements repository.AnnouncementRepository) MarketingService {
	return &marketingService{marketing: marketing, musicians: musicians, announcements: announcements}
}

// normalizeEmail accepts a bare address only, lower-cased.
func normalizeEmail(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}

func (s *marketingService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	addr, ok := normalizeEmail(email)
	if !ok {
		return nil, validationError("a valid email is required")
	}
	sub := &models.Subscriber{Email: addr}
	if err := s.marketing.CreateSubscriber(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return sub, nil
}

func (s *marketingService) Suggest(ctx context.Context, name, email, message string) (*models.Suggestion, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, validationError("message is required")
	}
	if utf8.RuneCountInString(message) > maxSuggestionLength {
		return nil, validationError("message is too long")
	}

	suggestion := &models.Suggestion{Name: strings.TrimSpace(name), Message: message}
	if strings.TrimSpace(email) != "" {
		addr, ok := normalizeEmail(email)
		if !ok {
			return nil, validationError("email is not valid")
		}
		suggestion.Email = addr
	}
	if err := s.marketing.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}
	return suggestion, nil
}

func (s *marketingService) Landing(ctx context.Context) (*models.LandingData, error) {
	featured, _, err := s.musicians.Search(ctx, repository.MusicianFilter{
		Sort:  repository.SortRating,
		Limit: featuredMusicians,
	})
	if err != nil {
		return nil, fmt.Errorf("featured musicians: %w", err)
	}
	announcements, err := s.announcements.FindActive(ctx, landingAnnouncementSize)
	if err != nil {
		return nil, fmt.Errorf("announcements: %w", err)
	}
	musicianCount, err := s.musicians.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count musicians: %w", err)
	}
	completed, err := s.marketing.CountCompletedBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("count completed bookings: %w", err)
	}

	return &models.LandingData{
		FeaturedMusicians: featured,
		Announcements:     announcements,
		MusicianCount:     musicianCount,
		CompletedBookings: completed,
	}, nil
}
