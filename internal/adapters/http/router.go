// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

// Routes bundles the handlers mounted by NewRouter. Metrics is optional and
// is mounted at MetricsPath when non-nil.
type Routes struct {
	Todo        *handlers.TodoHandler
	Health      *handlers.HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unmatched paths,
// including non-numeric todo ids, get a 404 envelope; a known path with the
// wrong method gets a 405 envelope.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Operational endpoints.
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)
	if routes.Metrics != nil {
		r.Method(http.MethodGet, routes.MetricsPath, routes.Metrics)
	}

	r.Get("/", routes.Todo.Home)

	r.Get("/todos", routes.Todo.ListTodos)
	r.Post("/todos", routes.Todo.CreateTodo)
	r.Get("/todos/{id:[0-9]+}", routes.Todo.GetTodo)
	r.Put("/todos/{id:[0-9]+}", routes.Todo.UpdateTodo)
	r.Delete("/todos/{id:[0-9]+}", routes.Todo.DeleteTodo)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusNotFound, dto.Failure(dto.MsgRouteNotFound))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusMethodNotAllowed, dto.Failure(dto.MsgMethodNotAllowed))
}
