package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"picprompt/internal/http/handlers"
	"picprompt/internal/middleware"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
	)
	if limit := app.Config.RateLimitPerMin; limit > 0 {
		r.Use(middleware.RateLimit(limit, time.Minute))
	}

	r.Get("/", app.Index)
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/prompts", func(r chi.Router) {
		r.Get("/options", app.Options)
		r.Post("/generate", app.Generate)
	})

	return r
}
