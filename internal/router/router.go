package router

import (
	"context"
	"net/http"
	"time"

	_ "african-animals/docs"
	mem "african-animals/internal/adapters/storage/memory"
	"african-animals/internal/domain/animals"
	"african-animals/internal/middleware"
	"african-animals/internal/platform/logger"
	"african-animals/internal/views"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const greeting = "Your server is running...You better catch it"

type Options struct {
	// Opcional: si viene nil, usa el repo in-memory (tests / dev).
	Animals animals.Repository

	// Opcional: si viene nil, logger desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	repo := opts.Animals
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	// antes del routing: convierte POST + _method en PUT/DELETE
	r.Use(middleware.MethodOverride)

	animalsSvc := animals.NewService(repo, log)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(greeting))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := animalsSvc.Ready(ctx); err != nil {
			log.Warn("readiness check failed", map[string]any{"err": err})
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/static/*", http.StripPrefix("/static/", views.StaticHandler()))

	animals.RegisterRoutes(r, animalsSvc, log)

	return r
}
