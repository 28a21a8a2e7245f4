package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Handler_Success(t *testing.T) {
	var got dto.CreateBookingRequest
	svc := &mockBookingService{
		createFn: func(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error) {
			got = req
			return &models.Booking{
				ID:         1,
				ClientID:   client.ID,
				MusicianID: req.MusicianID,
				EventType:  req.EventType,
				EventDate:  req.EventDate,
				Budget:     req.Budget,
				Status:     models.StatusPending,
				CreatedAt:  time.Now(),
			}, nil
		},
	}

	body := `{"musician_id":3,"event_type":"Wedding","event_date":"2030-06-01T18:00:00Z","budget":"300.50"}`
	c, rec := newContext(http.MethodPost, "/api/v1/bookings", body, testUser)

	err := NewBookingHandler(svc).CreateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint(3), got.MusicianID)
	assert.True(t, decimal.RequireFromString("300.5").Equal(got.Budget))

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, uint(10), resp.ClientID)
}

func TestCreateBooking_Handler_InvalidBody(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/v1/bookings", `{"musician_id":"three"`, testUser)

	err := NewBookingHandler(nil).CreateBooking(c)

	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestCreateBooking_Handler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{service.ErrBookerRoleRequired, http.StatusForbidden},
		{service.ErrMusicianNotFound, http.StatusNotFound},
		{service.ErrSelfBooking, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockBookingService{
				createFn: func(ctx context.Context, client *models.User, req dto.CreateBookingRequest) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPost, "/api/v1/bookings", `{"musician_id":3}`, testUser)

			err := NewBookingHandler(svc).CreateBooking(c)

			assertHTTPError(t, err, tt.code)
		})
	}
}

func TestUpdateStatus_Handler(t *testing.T) {
	var gotStatus string
	var gotID uint
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error) {
			gotID, gotStatus = id, status
			return &models.Booking{ID: id, Status: models.BookingStatus(status)}, nil
		},
	}

	c, rec := newContext(http.MethodPatch, "/api/v1/bookings/5/status", `{"status":"ACCEPTED"}`, testUser)
	err := NewBookingHandler(svc).UpdateStatus(withID(c, "5"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), gotID)
	assert.Equal(t, "ACCEPTED", gotStatus)
}

func TestUpdateStatus_Handler_MissingStatus(t *testing.T) {
	c, _ := newContext(http.MethodPatch, "/api/v1/bookings/5/status", `{}`, testUser)

	err := NewBookingHandler(nil).UpdateStatus(withID(c, "5"))

	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestUpdateStatus_Handler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{service.ErrInvalidTransition, http.StatusConflict},
		{service.ErrStatusConflict, http.StatusConflict},
		{service.ErrTransitionForbidden, http.StatusForbidden},
		{service.ErrNotBookingParty, http.StatusForbidden},
		{service.ErrBookingNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockBookingService{
				updateFn: func(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error) {
					return nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPost, "/api/v1/bookings/5/accept", "", testUser)

			err := NewBookingHandler(svc).transitionTo(models.StatusAccepted)(withID(c, "5"))

			assertHTTPError(t, err, tt.code)
		})
	}
}

func TestShortcutRoutes_UseFixedStatus(t *testing.T) {
	var got []string
	svc := &mockBookingService{
		updateFn: func(ctx context.Context, user *models.User, id uint, status string) (*models.Booking, error) {
			got = append(got, status)
			return &models.Booking{ID: id}, nil
		},
	}
	h := NewBookingHandler(svc)

	for _, st := range []models.BookingStatus{models.StatusAccepted, models.StatusDeclined, models.StatusCancelled, models.StatusCompleted} {
		c, _ := newContext(http.MethodPost, "/", "", testUser)
		require.NoError(t, h.transitionTo(st)(withID(c, "5")))
	}
	assert.Equal(t, []string{"ACCEPTED", "DECLINED", "CANCELLED", "COMPLETED"}, got)
}

func TestGetBooking_Handler_InvalidID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/api/v1/bookings/abc", "", testUser)

	err := NewBookingHandler(nil).GetBooking(withID(c, "abc"))

	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestListBookings_Handler_PassesQuery(t *testing.T) {
	var side, status string
	svc := &mockBookingService{
		listFn: func(ctx context.Context, user *models.User, s, st string) ([]models.Booking, error) {
			side, status = s, st
			return []models.Booking{
				{ID: 1, Status: models.StatusPending},
				{ID: 2, Status: models.StatusAccepted},
			}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/api/v1/bookings?as=musician&status=PENDING", "", testUser)
	err := NewBookingHandler(svc).ListBookings(c)

	require.NoError(t, err)
	assert.Equal(t, "musician", side)
	assert.Equal(t, "PENDING", status)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
