package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saulo-duarte/h2owise/internal/aiquiz"
	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/saulo-duarte/h2owise/internal/score"
)

type RouterConfig struct {
	APIPrefix       string
	AllowedOrigins  []string
	QuestionHandler *question.Handler
	ScoreHandler    *score.Handler
	AIQuizHandler   *aiquiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg.AllowedOrigins),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}

	r.Route(prefix, func(r chi.Router) {
		question.Routes(r, cfg.QuestionHandler)
		score.Routes(r, cfg.ScoreHandler)
		r.Mount("/ai", aiquiz.Routes(cfg.AIQuizHandler))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
