package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilLimiterNeverLimits(t *testing.T) {
	t.Parallel()

	var l *Limiter

	exceeded, err := l.CheckIPRateLimitWithPurpose(t.Context(), "1.2.3.4", PurposeAuth)
	require.NoError(t, err)
	assert.False(t, exceeded)
	require.NoError(t, l.RecordIPRequestWithPurpose(t.Context(), "1.2.3.4", PurposeAuth))
	require.NoError(t, l.ResetIPWithPurpose(t.Context(), "1.2.3.4", PurposeAuth))

	called := false
	h := l.Limit(PurposeRegister)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users", nil))
	assert.True(t, called)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientIP(r))

	r.RemoteAddr = "10.0.0.2"
	assert.Equal(t, "10.0.0.2", ClientIP(r))

	r.RemoteAddr = "[::1]:80"
	assert.Equal(t, "::1", ClientIP(r))
}

func TestLimiterRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(t.Context()).Err())

	l := NewLimiter(client, 2, time.Minute)
	ip := "test-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	t.Cleanup(func() { _ = l.ResetIPWithPurpose(t.Context(), ip, PurposeRegister) })

	h := l.Limit(PurposeRegister)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	codes := make([]int, 0, 3)
	for range 3 {
		r := httptest.NewRequest(http.MethodPost, "/users", nil)
		r.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	ttl, err := client.TTL(t.Context(), ipKey(ip, PurposeRegister)).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}
