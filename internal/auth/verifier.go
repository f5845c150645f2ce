package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redmonkez12/courses-api/internal/password"
	"github.com/redmonkez12/courses-api/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash is checked when the email is unknown so that a miss costs the
// same argon2id work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, err := password.Hash("courses-api-unknown-user")
	if err != nil {
		panic(fmt.Sprintf("hash dummy password: %v", err))
	}
	return hash
})

// UserLookup finds the account behind a Basic-Auth username.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Verifier checks credentials against stored password hashes
type Verifier struct {
	users  UserLookup
	verify func(encodedHash, plain string) error
}

func NewVerifier(users UserLookup) *Verifier {
	return &Verifier{users: users, verify: password.Verify}
}

// Verify returns the user whose email matches exactly and whose stored hash
// accepts the password. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials after a full hash comparison.
func (v *Verifier) Verify(ctx context.Context, email, plain string) (*user.User, error) {
	u, err := v.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		_ = v.verify(dummyHash(), plain)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := v.verify(u.PasswordHash, plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
