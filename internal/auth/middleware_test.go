package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/redmonkez12/courses-api/internal/httputil"
	"github.com/redmonkez12/courses-api/internal/password"
	"github.com/redmonkez12/courses-api/internal/user"
)

type fakeUsers struct {
	users map[string]*user.User
	err   error
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type fakeLimiter struct {
	mu       sync.Mutex
	max      int
	recorded map[string]int
}

func (f *fakeLimiter) CheckIPRateLimitWithPurpose(_ context.Context, ip, purpose string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recorded[purpose+ip] >= f.max, nil
}

func (f *fakeLimiter) RecordIPRequestWithPurpose(_ context.Context, ip, purpose string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded[purpose+ip]++
	return nil
}

func (f *fakeLimiter) ResetIPWithPurpose(_ context.Context, ip, purpose string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recorded, purpose+ip)
	return nil
}

func newLookup(t *testing.T) *fakeUsers {
	t.Helper()

	hash, err := password.Hash("secret")
	require.NoError(t, err)

	legacy, err := bcrypt.GenerateFromPassword([]byte("legacy-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeUsers{users: map[string]*user.User{
		"joe@x.com": {ID: 7, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@x.com", PasswordHash: hash},
		"old@x.com": {ID: 8, FirstName: "Old", LastName: "Timer", EmailAddress: "old@x.com", PasswordHash: string(legacy)},
	}}
}

func echoUser(w http.ResponseWriter, _ *http.Request, u *user.User) error {
	httputil.RespondJSON(w, u.Profile(), http.StatusOK)
	return nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httputil.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestVerifier(t *testing.T) {
	t.Parallel()

	v := NewVerifier(newLookup(t))

	u, err := v.Verify(t.Context(), "joe@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)

	u, err = v.Verify(t.Context(), "old@x.com", "legacy-pw")
	require.NoError(t, err)
	assert.Equal(t, int64(8), u.ID)

	_, err = v.Verify(t.Context(), "joe@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Verify(t.Context(), "nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	boom := errors.New("db down")
	_, err = NewVerifier(&fakeUsers{err: boom}).Verify(t.Context(), "joe@x.com", "secret")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(NewVerifier(newLookup(t)), nil)
	h := mw.RequireAuth(httputil.Handle(WithUser(echoUser)))

	tests := []struct {
		name        string
		setup       func(r *http.Request)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			setup:       func(*http.Request) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: MissingHeaderMessage,
		},
		{
			name:        "not basic",
			setup:       func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: MissingHeaderMessage,
		},
		{
			name:        "wrong password",
			setup:       func(r *http.Request) { r.SetBasicAuth("joe@x.com", "nope") },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: InvalidCredentialsMessage,
		},
		{
			name:        "unknown email",
			setup:       func(r *http.Request) { r.SetBasicAuth("ghost@x.com", "secret") },
			wantStatus:  http.StatusUnauthorized,
			wantMessage: InvalidCredentialsMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			tt.setup(r)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, `Basic realm="courses-api"`, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		r.SetBasicAuth("joe@x.com", "secret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var got user.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, user.Profile{ID: 7, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@x.com"}, got)
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	})
}

func TestRequireAuthLookupFailure(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(NewVerifier(&fakeUsers{err: errors.New("db down")}), nil)
	h := mw.RequireAuth(httputil.Handle(WithUser(echoUser)))

	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.SetBasicAuth("joe@x.com", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, httputil.InternalErrorMessage, decodeMessage(t, rec))
}

func TestRequireAuthThrottlesFailedAttempts(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{max: 2, recorded: map[string]int{}}
	mw := NewMiddleware(NewVerifier(newLookup(t)), limiter)
	h := mw.RequireAuth(httputil.Handle(WithUser(echoUser)))

	do := func(pw string) int {
		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		r.RemoteAddr = "192.0.2.1:4000"
		r.SetBasicAuth("joe@x.com", pw)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("secret"))
	assert.Equal(t, http.StatusUnauthorized, do("bad"))
	assert.Equal(t, http.StatusUnauthorized, do("bad"))
	assert.Equal(t, http.StatusTooManyRequests, do("secret"))
}

func TestRequireAuthSuccessClearsFailedAttempts(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{max: 2, recorded: map[string]int{}}
	mw := NewMiddleware(NewVerifier(newLookup(t)), limiter)
	h := mw.RequireAuth(httputil.Handle(WithUser(echoUser)))

	do := func(pw string) int {
		r := httptest.NewRequest(http.MethodGet, "/users", nil)
		r.RemoteAddr = "192.0.2.2:4000"
		r.SetBasicAuth("joe@x.com", pw)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do("bad"))
	assert.Equal(t, http.StatusOK, do("secret"))
	assert.Empty(t, limiter.recorded)

	assert.Equal(t, http.StatusUnauthorized, do("bad"))
	assert.Equal(t, http.StatusUnauthorized, do("bad"))
	assert.Equal(t, http.StatusTooManyRequests, do("secret"))
}

func TestVerifierUnknownEmailComparesDummyHash(t *testing.T) {
	t.Parallel()

	var compared []string
	v := NewVerifier(newLookup(t))
	v.verify = func(encodedHash, plain string) error {
		compared = append(compared, encodedHash)
		return password.Verify(encodedHash, plain)
	}

	_, err := v.Verify(t.Context(), "ghost@x.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.Equal(t, dummyHash(), compared[0])
	assert.Contains(t, compared[0], "$argon2id$")

	_, err = v.Verify(t.Context(), "joe@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, compared, 2)
}

func TestWithUserWithoutGate(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httputil.Handle(WithUser(echoUser)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, MissingHeaderMessage, decodeMessage(t, rec))
}
