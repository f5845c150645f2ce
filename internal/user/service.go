package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/password"
	"github.com/redmonkez12/courses-api/internal/validation"
)

// DuplicateEmailMessage is reported when emailAddress is already taken.
const DuplicateEmailMessage = "emailAddress must be unique"

// Service handles account creation.
type Service struct {
	repo      *Repository
	validator *validation.Validator
}

func NewService(repo *Repository, validator *validation.Validator) *Service {
	return &Service{repo: repo, validator: validator}
}

// Create validates req, hashes the password and stores the user. Constraint
// violations are returned as apperr validation or conflict failures.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*User, error) {
	messages, err := s.validator.Struct(&req)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return nil, apperr.Validation(messages...)
	}

	passwordHash, err := password.Hash(*req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.repo.Create(ctx, *req.FirstName, *req.LastName, *req.EmailAddress, passwordHash)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperr.Conflict(DuplicateEmailMessage, err)
		}
		return nil, err
	}

	return newUser, nil
}
