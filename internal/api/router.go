package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/userweb/engine/internal/api/handlers"
	mw "github.com/userweb/engine/internal/api/middleware"
)

const uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"

type Dependencies struct {
	UsersHandler   *handlers.UsersHandler
	HealthHandler  *handlers.HealthHandler
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	TrustProxy bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	rps, burst := dep.RateLimitRPS, dep.RateLimitBurst
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}

	// Built-in middleware
	r.Use(mw.RequestID)
	if dep.TrustProxy {
		r.Use(chimid.RealIP)
	}
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(rps, burst))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := dep.HealthHandler
	if hh == nil {
		hh = handlers.NewHealthHandler(nil)
	}
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/users", func(ur chi.Router) {
			ur.Get("/", dep.UsersHandler.List)
			ur.Post("/", dep.UsersHandler.Create)
			ur.Put("/updateUserByEmail", dep.UsersHandler.UpdateByEmail)
			ur.Put("/{id:"+uuidPattern+"}", dep.UsersHandler.Update)
			ur.Get("/{email}", dep.UsersHandler.GetByEmail)
		})
	})

	return r
}
