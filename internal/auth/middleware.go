package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/httputil"
	"github.com/redmonkez12/courses-api/internal/logging"
	"github.com/redmonkez12/courses-api/internal/ratelimit"
	"github.com/redmonkez12/courses-api/internal/user"
)

const (
	MissingHeaderMessage      = "Auth header not found"
	InvalidCredentialsMessage = "Access Denied: invalid credentials"

	// Realm is advertised in the WWW-Authenticate header of 401 responses.
	Realm = "courses-api"
)

type contextKey struct{}

// AttemptLimiter throttles failed sign-in attempts per client IP. A
// successful sign-in clears the counter. *ratelimit.Limiter satisfies it.
type AttemptLimiter interface {
	CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error
	ResetIPWithPurpose(ctx context.Context, ip, purpose string) error
}

// Middleware handles authentication for protected routes
type Middleware struct {
	verifier *Verifier
	limiter  AttemptLimiter
}

// NewMiddleware builds the gate. limiter may be nil.
func NewMiddleware(verifier *Verifier, limiter AttemptLimiter) *Middleware {
	return &Middleware{verifier: verifier, limiter: limiter}
}

// RequireAuth is a middleware that authenticates every request with HTTP
// Basic credentials and stores the resolved user in the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		email, plain, ok := r.BasicAuth()
		if !ok {
			unauthorized(w, r, MissingHeaderMessage)
			return
		}

		ip := ratelimit.ClientIP(r)
		if m.limiter != nil {
			exceeded, err := m.limiter.CheckIPRateLimitWithPurpose(r.Context(), ip, ratelimit.PurposeAuth)
			if err != nil {
				logger.Error("failed to check IP rate limit", "error", err.Error())
			} else if exceeded {
				logger.Warn("IP rate limit exceeded for authentication", "ip", ip)
				httputil.RespondFailure(w, r, apperr.RateLimited(ratelimit.TooManyRequestsMessage))
				return
			}
		}

		u, err := m.verifier.Verify(r.Context(), email, plain)
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("authentication failed", "ip", ip)
			if m.limiter != nil {
				if err := m.limiter.RecordIPRequestWithPurpose(r.Context(), ip, ratelimit.PurposeAuth); err != nil {
					logger.Error("failed to record IP request", "error", err.Error())
				}
			}
			unauthorized(w, r, InvalidCredentialsMessage)
			return
		}
		if err != nil {
			httputil.RespondFailure(w, r, err)
			return
		}

		if m.limiter != nil {
			if err := m.limiter.ResetIPWithPurpose(r.Context(), ip, ratelimit.PurposeAuth); err != nil {
				logger.Error("failed to reset IP rate limit", "error", err.Error())
			}
		}

		ctx := SetAuthenticatedUser(r.Context(), u)
		ctx = logging.WithLogger(ctx, logger.WithFields(map[string]any{"user_id": u.ID}))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`"`)
	httputil.RespondFailure(w, r, apperr.Unauthenticated(message))
}

// SetAuthenticatedUser returns a copy of ctx carrying u.
func SetAuthenticatedUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// GetAuthenticatedUser extracts the user attached by RequireAuth.
func GetAuthenticatedUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(contextKey{}).(*user.User)
	return u, ok && u != nil
}

// WithUser adapts a handler that needs the caller's identity. Requests that
// reach it without an authenticated user get a 401.
func WithUser(h func(w http.ResponseWriter, r *http.Request, u *user.User) error) httputil.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		u, ok := GetAuthenticatedUser(r.Context())
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+Realm+`"`)
			return apperr.Unauthenticated(MissingHeaderMessage)
		}
		return h(w, r, u)
	}
}
