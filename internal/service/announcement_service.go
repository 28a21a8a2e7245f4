package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const maxPublicAnnouncements = 10

type AnnouncementService interface {
	Create(ctx context.Context, adminID uint, req dto.AnnouncementRequest) (*models.Announcement, error)
	Update(ctx context.Context, id uint, req dto.AnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Announcement, error)
	Active(ctx context.Context) ([]models.Announcement, error)
}

type announcementService struct {
	announcements repository.AnnouncementRepository
}

func NewAnnouncementService(announcements repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcements: announcements}
}

func validateAnnouncement(req *dto.AnnouncementRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	if req.Title == "" || req.Body == "" {
		return validationError("title and body are required")
	}
	return nil
}

func (s *announcementService) Create(ctx context.Context, adminID uint, req dto.AnnouncementRequest) (*models.Announcement, error) {
	if err := validateAnnouncement(&req); err != nil {
		return nil, err
	}
	a := &models.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		Active:    true,
		CreatedBy: adminID,
	}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) Update(ctx context.Context, id uint, req dto.AnnouncementRequest) (*models.Announcement, error) {
	if err := validateAnnouncement(&req); err != nil {
		return nil, err
	}
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	a.Title, a.Body = req.Title, req.Body
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) Delete(ctx context.Context, id uint) error {
	ok, err := s.announcements.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements.FindAll(ctx)
}

func (s *announcementService) Active(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements.FindActive(ctx, maxPublicAnnouncements)
}
