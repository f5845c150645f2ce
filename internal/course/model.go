package course

import (
	"time"

	"github.com/redmonkez12/courses-api/internal/user"
)

type Course struct {
	ID              int64
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
	UserID          int64
	Owner           *user.Profile
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateRequest is the body accepted by POST /courses. A client-supplied
// userId is not part of it.
type CreateRequest struct {
	Title           *string `json:"title" validate:"required,min=1,notblank" msg_required:"A title is required" msg_min:"Please provide a title" msg_notblank:"Please provide a title"`
	Description     *string `json:"description" validate:"required,min=1,notblank" msg_required:"A description is required" msg_min:"Please provide a description" msg_notblank:"Please provide a description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// UpdateRequest is the body accepted by PUT /courses/{id}. Optional fields
// left out of the body keep their stored value.
type UpdateRequest struct {
	Title           *string `json:"title" validate:"required,min=1" msg_required:"Please provide a value for \"title\"" msg_min:"Please provide a value for \"title\""`
	Description     *string `json:"description" validate:"required,min=1" msg_required:"Please provide a value for \"description\"" msg_min:"Please provide a value for \"description\""`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// Response is the public projection of a course with its owner.
type Response struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   *string      `json:"estimatedTime"`
	MaterialsNeeded *string      `json:"materialsNeeded"`
	Owner           user.Profile `json:"owner"`
}

func (c *Course) Response() Response {
	resp := Response{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
	}
	if c.Owner != nil {
		resp.Owner = *c.Owner
	}
	return resp
}

// optional maps an empty string to nil so the column is stored as NULL.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
