package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/courses-api/internal/auth"
	"github.com/redmonkez12/courses-api/internal/config"
	"github.com/redmonkez12/courses-api/internal/course"
	"github.com/redmonkez12/courses-api/internal/httputil"
	"github.com/redmonkez12/courses-api/internal/logging"
	"github.com/redmonkez12/courses-api/internal/ratelimit"
	"github.com/redmonkez12/courses-api/internal/user"
)

const (
	WelcomeMessage       = "Welcome to the REST API project!"
	RouteNotFoundMessage = "Route Not Found"
)

// Handlers groups what the router mounts. Limiter may be nil.
type Handlers struct {
	Users   *user.Handler
	Courses *course.Handler
	Auth    *auth.Middleware
	Limiter *ratelimit.Limiter
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.TrustedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Content-Length", "Location"},
			MaxAge:         300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(Recoverer)
	r.Use(middleware.Compress(5))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/", handleWelcome)
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/users", func(r chi.Router) {
		r.With(h.Limiter.Limit(ratelimit.PurposeRegister)).
			Post("/", httputil.Handle(h.Users.Create))
		r.With(h.Auth.RequireAuth).
			Get("/", httputil.Handle(auth.WithUser(h.Users.GetCurrent)))
	})

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", httputil.Handle(h.Courses.List))
		r.Get("/{id}", httputil.Handle(h.Courses.Get))

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireAuth)
			r.Post("/", httputil.Handle(auth.WithUser(h.Courses.Create)))
			r.Put("/{id}", httputil.Handle(auth.WithUser(h.Courses.Update)))
			r.Delete("/{id}", httputil.Handle(auth.WithUser(h.Courses.Delete)))
		})
	})

	return r
}

// handleWelcome greets clients at the API root
// @Summary      Welcome
// @Tags         health
// @Produce      json
// @Success      200 {object} httputil.MessageResponse
// @Router       / [get]
func handleWelcome(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondMessage(w, WelcomeMessage, http.StatusOK)
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondMessage(w, RouteNotFoundMessage, http.StatusNotFound)
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondMessage(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
