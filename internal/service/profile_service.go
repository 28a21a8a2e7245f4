package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	maxTags         = 20
)

type ProfileService interface {
	CreateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error)
	UpdateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error)
	GetOwnMusician(ctx context.Context, user *models.User) (*models.Musician, error)
	GetMusician(ctx context.Context, id uint) (*models.MusicianWithRating, error)
	SearchMusicians(ctx context.Context, filter *repository.MusicianFilter) ([]models.MusicianWithRating, int64, error)

	CreateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error)
	UpdateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error)
	GetOwnBooker(ctx context.Context, user *models.User) (*models.Booker, error)
	GetBooker(ctx context.Context, id uint) (*models.Booker, error)
}

type profileService struct {
	tx        repository.TxRunner
	users     repository.UserRepository
	musicians repository.MusicianRepository
	bookers   repository.BookerRepository
}

func NewProfileService(tx repository.TxRunner, users repository.UserRepository, musicians repository.MusicianRepository, bookers repository.BookerRepository) ProfileService {
	return &profileService{tx: tx, users: users, musicians: musicians, bookers: bookers}
}

func (s *profileService) CreateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error) {
	if user.Musician != nil {
		return nil, ErrProfileExists
	}
	if req.StageName == nil || strings.TrimSpace(*req.StageName) == "" {
		return nil, validationError("stage_name is required")
	}

	musician := &models.Musician{UserID: user.ID}
	if err := applyMusicianRequest(musician, req); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.musicians.Create(ctx, tx, musician); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrProfileExists
			}
			return err
		}
		return s.users.UpdateRoles(ctx, tx, withRole(user, models.RoleMusician))
	})
	if err != nil {
		return nil, err
	}

	user.Musician = musician
	return musician, nil
}

func (s *profileService) UpdateMusician(ctx context.Context, user *models.User, req dto.MusicianProfileRequest) (*models.Musician, error) {
	musician, err := s.GetOwnMusician(ctx, user)
	if err != nil {
		return nil, err
	}
	if req.StageName != nil && strings.TrimSpace(*req.StageName) == "" {
		return nil, validationError("stage_name cannot be empty")
	}
	if err := applyMusicianRequest(musician, req); err != nil {
		return nil, err
	}
	if err := s.musicians.Update(ctx, musician); err != nil {
		return nil, fmt.Errorf("update musician: %w", err)
	}
	return musician, nil
}

func applyMusicianRequest(m *models.Musician, req dto.MusicianProfileRequest) error {
	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return validationError("hourly_rate cannot be negative")
		}
		m.HourlyRate = req.HourlyRate.Round(2)
	}
	if req.StageName != nil {
		m.StageName = strings.TrimSpace(*req.StageName)
	}
	if req.Bio != nil {
		m.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.Location != nil {
		m.Location = strings.TrimSpace(*req.Location)
	}
	if req.ProfileImage != nil {
		m.ProfileImage = strings.TrimSpace(*req.ProfileImage)
	}
	if req.CoverImage != nil {
		m.CoverImage = strings.TrimSpace(*req.CoverImage)
	}

	lists := []struct {
		name  string
		in    []string
		out   *[]string
		lower bool
	}{
		{"genres", req.Genres, (*[]string)(&m.Genres), true},
		{"instruments", req.Instruments, (*[]string)(&m.Instruments), true},
		{"services", req.Services, (*[]string)(&m.Services), false},
		{"media_urls", req.MediaURLs, (*[]string)(&m.MediaURLs), false},
	}
	for _, l := range lists {
		if l.in == nil {
			continue
		}
		tags := normalizeTags(l.in, l.lower)
		if len(tags) > maxTags {
			return validationError(fmt.Sprintf("%s cannot have more than %d entries", l.name, maxTags))
		}
		*l.out = tags
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	if m.Instruments == nil {
		m.Instruments = []string{}
	}
	if m.Services == nil {
		m.Services = []string{}
	}
	if m.MediaURLs == nil {
		m.MediaURLs = []string{}
	}
	return nil
}

// normalizeTags trims, drops blanks and de-duplicates case-insensitively,
// keeping first-seen order. Search filters rely on lower-cased genres and instruments.
func normalizeTags(in []string, lower bool) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		if lower {
			t = key
		}
		out = append(out, t)
	}
	return out
}

func (s *profileService) GetOwnMusician(ctx context.Context, user *models.User) (*models.Musician, error) {
	musician, err := s.musicians.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return musician, nil
}

func (s *profileService) GetMusician(ctx context.Context, id uint) (*models.MusicianWithRating, error) {
	musician, err := s.musicians.FindWithRating(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMusicianNotFound
		}
		return nil, err
	}
	return musician, nil
}

// SearchMusicians normalises paging on filter in place before querying.
func (s *profileService) SearchMusicians(ctx context.Context, filter *repository.MusicianFilter) ([]models.MusicianWithRating, int64, error) {
	switch filter.Sort {
	case "", repository.SortNewest, repository.SortRating, repository.SortName:
	default:
		return nil, 0, validationError("sort must be one of newest, rating, name")
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.musicians.Search(ctx, *filter)
}

func (s *profileService) CreateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error) {
	if user.Booker != nil {
		return nil, ErrProfileExists
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, validationError("name is required")
	}

	booker := &models.Booker{UserID: user.ID}
	if err := applyBookerRequest(booker, req); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := s.bookers.Create(ctx, tx, booker); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrProfileExists
			}
			return err
		}
		return s.users.UpdateRoles(ctx, tx, withRole(user, models.RoleBooker))
	})
	if err != nil {
		return nil, err
	}

	user.Booker = booker
	return booker, nil
}

func (s *profileService) UpdateBooker(ctx context.Context, user *models.User, req dto.BookerProfileRequest) (*models.Booker, error) {
	booker, err := s.GetOwnBooker(ctx, user)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, validationError("name cannot be empty")
	}
	if err := applyBookerRequest(booker, req); err != nil {
		return nil, err
	}
	if err := s.bookers.Update(ctx, booker); err != nil {
		return nil, fmt.Errorf("update booker: %w", err)
	}
	return booker, nil
}

func applyBookerRequest(b *models.Booker, req dto.BookerProfileRequest) error {
	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Organization != nil {
		b.Organization = strings.TrimSpace(*req.Organization)
	}
	if req.Bio != nil {
		b.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.Location != nil {
		b.Location = strings.TrimSpace(*req.Location)
	}
	if req.ProfileImage != nil {
		b.ProfileImage = strings.TrimSpace(*req.ProfileImage)
	}
	if req.Images != nil {
		images := normalizeTags(req.Images, false)
		if len(images) > maxTags {
			return validationError(fmt.Sprintf("images cannot have more than %d entries", maxTags))
		}
		b.Images = images
	}
	if b.Images == nil {
		b.Images = []string{}
	}
	return nil
}

func (s *profileService) GetOwnBooker(ctx context.Context, user *models.User) (*models.Booker, error) {
	booker, err := s.bookers.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return booker, nil
}

func (s *profileService) GetBooker(ctx context.Context, id uint) (*models.Booker, error) {
	booker, err := s.bookers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookerNotFound
		}
		return nil, err
	}
	return booker, nil
}
