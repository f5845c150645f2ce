package user

import (
	"net/http"

	"github.com/redmonkez12/courses-api/internal/httputil"
	"github.com/redmonkez12/courses-api/internal/logging"
)

// Handler contains HTTP handlers for user endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles account creation
// @Summary      Create a user
// @Description  Create a new account. The password is stored as a one-way hash.
// @Tags         users
// @Accept       json
// @Param        request body CreateRequest true "Account details"
// @Success      201 "Created, Location: /"
// @Failure      400 {object} httputil.ErrorsResponse "Validation error or duplicate email"
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		return err
	}

	newUser, err := h.service.Create(r.Context(), req)
	if err != nil {
		return err
	}

	logger.Info("user created", "user_id", newUser.ID)

	httputil.RespondCreated(w, "/")
	return nil
}

// GetCurrent returns the authenticated user
// @Summary      Get the current user
// @Description  Returns the profile of the user identified by the Basic-Auth credentials
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200 {object} Profile
// @Failure      401 {object} httputil.MessageResponse "Unauthorized"
// @Router       /users [get]
func (h *Handler) GetCurrent(w http.ResponseWriter, _ *http.Request, current *User) error {
	httputil.RespondJSON(w, current.Profile(), http.StatusOK)
	return nil
}
