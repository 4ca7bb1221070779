package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/config"
	"menagerie/internal/handler"
	"menagerie/internal/middleware"
)

// Pinger reports backing-store health for the liveness endpoint.
type Pinger interface {
	Health(ctx context.Context) error
}

func New(
	cfg *config.Config,
	db Pinger,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	animalHandler *handler.AnimalHandler,
	exampleHandler *handler.ExampleHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if db != nil {
			if err := db.Health(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/token", authHandler.Token)
	r.Post("/register", authHandler.Register)
	r.With(authMiddleware.RequireAuth).Get("/users/me", authHandler.Me)

	r.Get("/foxes", animalHandler.ListFoxes)
	r.Post("/foxes", animalHandler.CreateFox)
	r.Get("/foxes/{id}", animalHandler.GetFox)
	r.Get("/foxes/{id}/jumped_over", animalHandler.FoxJumpedOver)

	r.Get("/dogs", animalHandler.ListDogs)
	r.Post("/dogs", animalHandler.CreateDog)
	r.Get("/dogs/{id}", animalHandler.GetDog)

	r.Post("/fox_jumped_over_dog", animalHandler.LinkFoxDog)

	r.Get("/examples", exampleHandler.List)
	r.Post("/examples", exampleHandler.Create)
	r.Get("/examples/{id}", exampleHandler.Get)

	return r
}
