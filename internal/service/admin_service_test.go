package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (AdminService, *mockAdminRepo, *fakeRevoker) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	admins := &mockAdminRepo{admins: map[string]*models.Admin{
		"root": {ID: 1, Username: "root", PasswordHash: hash},
	}}
	revoker := &fakeRevoker{}
	stats := StatsSources{
		Users:     &mockUserRepo{count: 12},
		Musicians: &mockMusicianRepo{count: 5},
		Bookers:   &mockBookerRepo{count: 7},
		Bookings:  &mockBookingRepo{countByStatus: map[models.BookingStatus]int64{models.StatusPending: 2}},
		Marketing: &mockMarketingRepo{subscribers: 30},
	}
	svc := NewAdminService(admins, auth.NewAdminTokens("admin-secret", time.Hour), revoker, stats)
	return svc, admins, revoker
}

func TestAdminLogin(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	token, claims, err := svc.Login(context.Background(), " root ", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), claims.AdminID)

	_, _, err = svc.Login(context.Background(), "root", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminLogoutRevokesToken(t *testing.T) {
	svc, _, revoker := newAdminFixture(t)

	token, _, err := svc.Login(context.Background(), "root", "correct-horse")
	require.NoError(t, err)

	claims, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	ttl, ok := revoker.revoked[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAdminAuthenticate_BadToken(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	other, _, err := auth.NewAdminTokens("different-secret", time.Hour).Issue(1, "root")
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), other)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCreateAdmin(t *testing.T) {
	svc, admins, _ := newAdminFixture(t)

	_, err := svc.CreateAdmin(context.Background(), "ops", "short")
	assert.ErrorIs(t, err, ErrValidation)

	admin, err := svc.CreateAdmin(context.Background(), " ops ", "long-enough-password")
	require.NoError(t, err)
	assert.Equal(t, "ops", admin.Username)
	assert.Same(t, admin, admins.upserted)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "long-enough-password"))
}

func TestAdminStats(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(5), stats.Musicians)
	assert.Equal(t, int64(7), stats.Bookers)
	assert.Equal(t, int64(2), stats.Bookings[models.StatusPending])
	assert.Equal(t, int64(30), stats.Subscribers)
}

func TestAdminMe(t *testing.T) {
	svc, _, _ := newAdminFixture(t)

	admin, err := svc.Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)

	_, err = svc.Me(context.Background(), 99)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
