package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectHit(mock redismock.ClientMock, key string, count int64, window time.Duration) {
	mock.ExpectTxPipeline()
	mock.ExpectIncr(key).SetVal(count)
	mock.ExpectExpireNX(key, window).SetVal(count == 1)
	mock.ExpectTxPipelineExec()
}

func TestRateLimitStore_FirstHitSetsWindow(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRateLimitStore(db, "rl:", 2, time.Minute)

	expectHit(mock, "rl:1.2.3.4", 1, time.Minute)

	allowed, err := store.Allow("1.2.3.4")

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitStore_OverLimit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRateLimitStore(db, "rl:", 2, time.Minute)

	expectHit(mock, "rl:1.2.3.4", 3, time.Minute)

	allowed, err := store.Allow("1.2.3.4")

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A first hit whose EXPIRE never landed must not pin the counter forever:
// every later hit sets the window again.
func TestRateLimitStore_LostExpiryIsReapplied(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRateLimitStore(db, "rl:", 2, time.Minute)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("rl:1.2.3.4").SetVal(1)
	mock.ExpectExpireNX("rl:1.2.3.4", time.Minute).SetErr(errors.New("i/o timeout"))

	allowed, err := store.Allow("1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)

	for hit := int64(2); hit <= 4; hit++ {
		expectHit(mock, "rl:1.2.3.4", hit, time.Minute)
		_, err := store.Allow("1.2.3.4")
		require.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitStore_FailsOpen(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRateLimitStore(db, "rl:", 2, time.Minute)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("rl:1.2.3.4").SetErr(errors.New("connection refused"))

	allowed, err := store.Allow("1.2.3.4")

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestTokenRevocations(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rev := NewTokenRevocations(db)
	ctx := context.Background()

	mock.ExpectSet("admin:revoked:abc", "1", 10*time.Minute).SetVal("OK")
	require.NoError(t, rev.Revoke(ctx, "abc", 10*time.Minute))

	mock.ExpectExists("admin:revoked:abc").SetVal(1)
	revoked, err := rev.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	mock.ExpectExists("admin:revoked:xyz").SetVal(0)
	revoked, err = rev.IsRevoked(ctx, "xyz")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRevocations_ExpiredTokenIsNoop(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rev := NewTokenRevocations(db)

	assert.NoError(t, rev.Revoke(context.Background(), "abc", 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}
