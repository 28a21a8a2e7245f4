package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"github.com/labstack/echo/v4"
)

const (
	userContextKey = "musiconnect.user"
	SessionCookie  = "__session"
)

type TokenVerifier interface {
	Verify(token string) (*auth.ProviderClaims, error)
}

type UserSyncer interface {
	SyncFromClaims(ctx context.Context, claims *auth.ProviderClaims) (*models.User, error)
}

// RequireUser verifies the provider session token and stores the matching
// local user on the context.
func RequireUser(verifier TokenVerifier, users UserSyncer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			user, err := users.SyncFromClaims(c.Request().Context(), claims)
			if err != nil {
				return err
			}
			SetUser(c, user)
			return next(c)
		}
	}
}

func SetUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the user set by RequireUser, or nil on public routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

func sessionToken(c echo.Context) string {
	if token := bearerToken(c); token != "" {
		return token
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
