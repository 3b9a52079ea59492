package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/avetrov/habits-server/internal/api/http/handler"
	"github.com/avetrov/habits-server/internal/api/http/middleware"
	"github.com/avetrov/habits-server/internal/logger"
)

// Router wires the habit tracking endpoints and middleware.
type Router struct {
	habitHandler  *handler.Habit
	healthHandler *handler.Health
	logger        *logger.Logger
}

// New creates a new Router instance.
func New(
	habitHandler *handler.Habit,
	healthHandler *handler.Health,
	logger *logger.Logger,
) *Router {
	return &Router{
		habitHandler:  habitHandler,
		healthHandler: healthHandler,
		logger:        logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimid.RequestID)
	mux.Use(chimid.RealIP)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	mux.Use(chimid.Recoverer)

	mux.Get("/health", r.healthHandler.ServeHTTP)

	mux.Get("/", r.habitHandler.Index)
	mux.Get("/add", r.habitHandler.AddForm)
	mux.Post("/add", r.habitHandler.Add)
	mux.Post("/complete", r.habitHandler.Complete)

	return mux
}
