package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

var errorStatus = []struct {
	err  error
	code int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{service.ErrSelfBooking, http.StatusBadRequest},
	{service.ErrSelfConversation, http.StatusBadRequest},
	{service.ErrSelfReview, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenRevoked, http.StatusUnauthorized},

	{service.ErrBookerRoleRequired, http.StatusForbidden},
	{service.ErrNotBookingParty, http.StatusForbidden},
	{service.ErrTransitionForbidden, http.StatusForbidden},
	{service.ErrNotParticipant, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrProfileNotFound, http.StatusNotFound},
	{service.ErrMusicianNotFound, http.StatusNotFound},
	{service.ErrBookerNotFound, http.StatusNotFound},
	{service.ErrBookingNotFound, http.StatusNotFound},
	{service.ErrConversationNotFound, http.StatusNotFound},
	{service.ErrNotificationNotFound, http.StatusNotFound},
	{service.ErrAnnouncementNotFound, http.StatusNotFound},

	{service.ErrRoleNotHeld, http.StatusConflict},
	{service.ErrProfileExists, http.StatusConflict},
	{service.ErrInvalidTransition, http.StatusConflict},
	{service.ErrStatusConflict, http.StatusConflict},
	{service.ErrAlreadyReviewed, http.StatusConflict},
	{service.ErrAlreadySubscribed, http.StatusConflict},
}

// httpError maps service errors to HTTP errors. Anything unknown is returned
// as is and rendered as a 500 by the error handler.
func httpError(err error) error {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return echo.NewHTTPError(e.code, err.Error())
		}
	}
	return err
}

func parseID(c echo.Context, param, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+label+" id")
	}
	return uint(id), nil
}

func bindJSON(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}
