package devserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/techsolutions/horabank/internal/logger"
)

// Routes assembles the full development API router: auth endpoints,
// the authenticated client endpoints, and the Prometheus scrape path.
func Routes(handler *Handler, auth *Authenticator, repo Repository, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(RequestLogger(log))
	r.Use(Metrics(collector))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handler.Signup)
			r.Post("/login", handler.Login)

			r.Group(func(r chi.Router) {
				r.Use(Authenticate(auth, repo))
				r.Post("/logout", handler.Logout)
				r.Put("/update-profile", handler.UpdateProfile)
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(Authenticate(auth, repo))
			r.Get("/users", handler.Users)
			r.Get("/tasks", handler.Tasks)
			r.Post("/tasks", handler.CreateTask)
			r.Get("/tasks/history", handler.TaskHistory)
			r.Get("/hour-bank", handler.HourBank)
		})
	})

	r.Method(http.MethodGet, "/metrics", MetricsHandler(registry))

	return r
}
