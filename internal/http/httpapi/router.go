package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"imagestudio/internal/http/handlers"
	"imagestudio/internal/infra"
	"imagestudio/internal/middleware"
)

// requestTimeout bounds a whole request, including the outbound model call,
// which otherwise has no timeout of its own.
const requestTimeout = 90 * time.Second

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/generate", app.GenerateImage)
		r.Post("/edit", app.EditImage)
	})

	// Everything else is the built UI, with index.html as the client-side
	// routing fallback.
	r.NotFound(app.ServeSPA)

	return r
}
