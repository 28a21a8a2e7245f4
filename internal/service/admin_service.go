package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"gorm.io/gorm"
)

const minAdminPasswordLength = 8

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (string, *auth.AdminClaims, error)
	Logout(ctx context.Context, claims *auth.AdminClaims) error
	Authenticate(ctx context.Context, token string) (*auth.AdminClaims, error)
	Me(ctx context.Context, adminID uint) (*models.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error)
	Stats(ctx context.Context) (*models.PlatformStats, error)
	Subscribers(ctx context.Context) ([]models.Subscriber, error)
	Suggestions(ctx context.Context) ([]models.Suggestion, error)
}

// StatsSources groups the repositories the dashboard counts come from.
type StatsSources struct {
	Users     repository.UserRepository
	Musicians repository.MusicianRepository
	Bookers   repository.BookerRepository
	Bookings  repository.BookingRepository
	Marketing repository.MarketingRepository
}

type adminService struct {
	admins  repository.AdminRepository
	tokens  *auth.AdminTokens
	revoker TokenRevoker
	stats   StatsSources
	now     func() time.Time
}

func NewAdminService(admins repository.AdminRepository, tokens *auth.AdminTokens, revoker TokenRevoker, stats StatsSources) AdminService {
	return &adminService{
		admins:  admins,
		tokens:  tokens,
		revoker: revoker,
		stats:   stats,
		now:     time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnPasswordCheck spends a bcrypt comparison so unknown usernames take as
// long as wrong passwords.
func burnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = auth.HashPassword("musiconnect-unknown-admin")
	})
	auth.CheckPassword(dummyHash, password)
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, *auth.AdminClaims, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, validationError("username and password are required")
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			burnPasswordCheck(password)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return "", nil, err
	}
	log.Printf("[Admin] %s signed in", admin.Username)
	return token, claims, nil
}

// Logout revokes the token id for the rest of its lifetime.
func (s *adminService) Logout(ctx context.Context, claims *auth.AdminClaims) error {
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke admin token: %w", err)
	}
	return nil
}

func (s *adminService) Authenticate(ctx context.Context, token string) (*auth.AdminClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check admin token: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *adminService) Me(ctx context.Context, adminID uint) (*models.Admin, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return admin, nil
}

// CreateAdmin creates the account or resets its password when the username exists.
func (s *adminService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError("username is required")
	}
	if len(password) < minAdminPasswordLength {
		return nil, validationError(fmt.Sprintf("password must be at least %d characters", minAdminPasswordLength))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.admins.Upsert(ctx, admin); err != nil {
		return nil, fmt.Errorf("save admin: %w", err)
	}
	return admin, nil
}

func (s *adminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	var (
		stats models.PlatformStats
		err   error
	)
	if stats.Users, err = s.stats.Users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.Musicians, err = s.stats.Musicians.Count(ctx); err != nil {
		return nil, fmt.Errorf("count musicians: %w", err)
	}
	if stats.Bookers, err = s.stats.Bookers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count bookers: %w", err)
	}
	if stats.Bookings, err = s.stats.Bookings.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if stats.Subscribers, err = s.stats.Marketing.CountSubscribers(ctx); err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	if stats.Suggestions, err = s.stats.Marketing.CountSuggestions(ctx); err != nil {
		return nil, fmt.Errorf("count suggestions: %w", err)
	}
	return &stats, nil
}

func (s *adminService) Subscribers(ctx context.Context) ([]models.Subscriber, error) {
	return s.stats.Marketing.ListSubscribers(ctx)
}

func (s *adminService) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return s.stats.Marketing.ListSuggestions(ctx)
}
