package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"github.com/labstack/echo/v4"
)

const adminContextKey = "musiconnect.admin"

type AdminAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.AdminClaims, error)
}

func RequireAdmin(admins AdminAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin authentication required")
			}

			claims, err := admins.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, service.ErrTokenRevoked) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired admin session")
				}
				return err
			}
			SetAdmin(c, claims)
			return next(c)
		}
	}
}

func SetAdmin(c echo.Context, claims *auth.AdminClaims) {
	c.Set(adminContextKey, claims)
}

func CurrentAdmin(c echo.Context) *auth.AdminClaims {
	claims, _ := c.Get(adminContextKey).(*auth.AdminClaims)
	return claims
}
