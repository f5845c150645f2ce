package course

import (
	"fmt"
	"net/http"

	"github.com/redmonkez12/courses-api/internal/httputil"
	"github.com/redmonkez12/courses-api/internal/logging"
	"github.com/redmonkez12/courses-api/internal/user"
)

// Handler contains HTTP handlers for course endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns every course
// @Summary      List courses
// @Description  Returns all courses with their owners, ordered by id
// @Tags         courses
// @Produce      json
// @Success      200 {array} Response
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /courses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	resp := make([]Response, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, c.Response())
	}

	httputil.RespondJSON(w, resp, http.StatusOK)
	return nil
}

// Get returns one course
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id path int true "Course ID"
// @Success      200 {object} Response
// @Failure      404 {object} httputil.MessageResponse "Course not found"
// @Router       /courses/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := httputil.IDParam(r, "id", NotFoundMessage)
	if err != nil {
		return err
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}

	httputil.RespondJSON(w, c.Response(), http.StatusOK)
	return nil
}

// Create handles course creation
// @Summary      Create a course
// @Description  The course is owned by the authenticated user. A userId in the body is ignored.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        request body CreateRequest true "Course details"
// @Success      201 "Created, Location: /courses/{id}"
// @Failure      400 {object} httputil.ErrorsResponse "Validation error"
// @Failure      401 {object} httputil.MessageResponse "Unauthorized"
// @Router       /courses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, caller *user.User) error {
	var req CreateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	c, err := h.service.Create(r.Context(), caller.ID, req)
	if err != nil {
		return err
	}

	logging.GetLoggerFromContext(r.Context()).Info("course created", "course_id", c.ID)

	httputil.RespondCreated(w, fmt.Sprintf("/courses/%d", c.ID))
	return nil
}

// Update handles course updates by the owner
// @Summary      Update a course
// @Description  Owner only. title and description are required; estimatedTime and materialsNeeded change only when present.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id path int true "Course ID"
// @Param        request body UpdateRequest true "Course fields"
// @Success      204
// @Failure      400 {object} httputil.ErrorsResponse "Validation error"
// @Failure      401 {object} httputil.MessageResponse "Unauthorized"
// @Failure      403 {object} httputil.MessageResponse "Not the owner"
// @Failure      404 {object} httputil.MessageResponse "Course not found"
// @Router       /courses/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, caller *user.User) error {
	id, err := httputil.IDParam(r, "id", NotFoundMessage)
	if err != nil {
		return err
	}

	c, err := h.service.GetOwned(r.Context(), caller.ID, id, ActionUpdate)
	if err != nil {
		return err
	}

	var req UpdateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	if err := h.service.Update(r.Context(), c, req); err != nil {
		return err
	}

	logging.GetLoggerFromContext(r.Context()).Info("course updated", "course_id", c.ID)

	httputil.RespondNoContent(w)
	return nil
}

// Delete handles course deletion by the owner
// @Summary      Delete a course
// @Tags         courses
// @Security     BasicAuth
// @Param        id path int true "Course ID"
// @Success      204
// @Failure      401 {object} httputil.MessageResponse "Unauthorized"
// @Failure      403 {object} httputil.MessageResponse "Not the owner"
// @Failure      404 {object} httputil.MessageResponse "Course not found"
// @Router       /courses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, caller *user.User) error {
	id, err := httputil.IDParam(r, "id", NotFoundMessage)
	if err != nil {
		return err
	}

	c, err := h.service.GetOwned(r.Context(), caller.ID, id, ActionDelete)
	if err != nil {
		return err
	}

	if err := h.service.Delete(r.Context(), c); err != nil {
		return err
	}

	logging.GetLoggerFromContext(r.Context()).Info("course deleted", "course_id", c.ID)

	httputil.RespondNoContent(w)
	return nil
}
