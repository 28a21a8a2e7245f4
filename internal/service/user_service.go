package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"gorm.io/gorm"
)

type UserService interface {
	SyncFromClaims(ctx context.Context, claims *auth.ProviderClaims) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	AddRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error)
	SwitchRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// SyncFromClaims maps a provider identity to the local user, creating it on first sight.
func (s *userService) SyncFromClaims(ctx context.Context, claims *auth.ProviderClaims) (*models.User, error) {
	user, err := s.users.FindByExternalID(ctx, claims.Subject)
	if err == nil {
		if identityChanged(user, claims) {
			user.Email, user.Name, user.ImageURL = claims.Email, claims.Name, claims.Picture
			if err := s.users.UpdateIdentity(ctx, user); err != nil {
				return nil, fmt.Errorf("update user identity: %w", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	user = &models.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		ImageURL:   claims.Picture,
		Roles:      []string{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		// concurrent first requests from the same browser
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.users.FindByExternalID(ctx, claims.Subject)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func identityChanged(u *models.User, c *auth.ProviderClaims) bool {
	if c.Email == "" && c.Name == "" && c.Picture == "" {
		return false
	}
	return u.Email != c.Email || u.Name != c.Name || u.ImageURL != c.Picture
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) AddRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if err := s.users.UpdateRoles(ctx, nil, withRole(user, role)); err != nil {
		return nil, fmt.Errorf("update roles: %w", err)
	}
	return user, nil
}

func (s *userService) SwitchRole(ctx context.Context, user *models.User, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if !user.HasRole(role) {
		return nil, ErrRoleNotHeld
	}
	user.ActiveRole = &role
	if err := s.users.UpdateRoles(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("update roles: %w", err)
	}
	return user, nil
}

// withRole grants role if missing and makes it the active one.
func withRole(user *models.User, role models.Role) *models.User {
	if !user.HasRole(role) {
		user.Roles = append(user.Roles, string(role))
	}
	user.ActiveRole = &role
	return user
}

// NextPage decides where the UI should send the user after sign-in.
func NextPage(user *models.User) string {
	role, ok := user.CurrentRole()
	if !ok {
		return "/select-role"
	}
	switch role {
	case models.RoleMusician:
		if user.Musician == nil {
			return "/musician/setup"
		}
		return "/musician/dashboard"
	default:
		if user.Booker == nil {
			return "/booker/setup"
		}
		return "/booker/dashboard"
	}
}
