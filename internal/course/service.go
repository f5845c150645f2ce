package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/validation"
)

const NotFoundMessage = "Course not found"

// Action names the owner-only operation being attempted.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ForbiddenMessage is reported when the caller does not own the course.
func ForbiddenMessage(action Action) string {
	return fmt.Sprintf("You do not own this course and cannot %s it", action)
}

// Service holds the course business rules.
type Service struct {
	repo      *Repository
	validator *validation.Validator
}

func NewService(repo *Repository, validator *validation.Validator) *Service {
	return &Service{repo: repo, validator: validator}
}

func (s *Service) List(ctx context.Context) ([]*Course, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound(NotFoundMessage)
	}
	return c, err
}

// Create stores a course owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Course, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, ownerID, *req.Title, *req.Description,
		optional(req.EstimatedTime), optional(req.MaterialsNeeded))
}

// GetOwned loads course id and checks that callerID owns it. It runs before
// any request body is looked at.
func (s *Service) GetOwned(ctx context.Context, callerID, id int64, action Action) (*Course, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != callerID {
		return nil, apperr.Forbidden(ForbiddenMessage(action))
	}
	return c, nil
}

// Update applies req to c, which must come from GetOwned. Every violation
// is reported together and nothing is written when there is one.
func (s *Service) Update(ctx context.Context, c *Course, req UpdateRequest) error {
	if err := s.validate(&req); err != nil {
		return err
	}

	staged := *c
	staged.Title = *req.Title
	staged.Description = *req.Description
	if req.EstimatedTime != nil {
		staged.EstimatedTime = optional(req.EstimatedTime)
	}
	if req.MaterialsNeeded != nil {
		staged.MaterialsNeeded = optional(req.MaterialsNeeded)
	}

	if err := s.repo.Update(ctx, &staged); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound(NotFoundMessage)
		}
		return err
	}

	*c = staged
	return nil
}

// Delete removes c, which must come from GetOwned.
func (s *Service) Delete(ctx context.Context, c *Course) error {
	err := s.repo.Delete(ctx, c.ID)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(NotFoundMessage)
	}
	return err
}

func (s *Service) validate(req any) error {
	messages, err := s.validator.Struct(req)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return apperr.Validation(messages...)
	}
	return nil
}
