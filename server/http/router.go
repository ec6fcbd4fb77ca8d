package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	catHnd "bikematch-service/internal/catalog/handler"
	catSvc "bikematch-service/internal/catalog/service"
	"bikematch-service/internal/config"
	"bikematch-service/internal/middleware"
	quizHnd "bikematch-service/internal/quiz/handler"
	"bikematch-service/server/http/handlers"
)

func NewRouter(cfg config.Config, store *catSvc.Store, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyKB) * 1024))

	r.Get("/health", handlers.Health)

	// catalog snapshot + regeneration
	r.Get("/catalog.json", catHnd.CatalogJSON(store))
	r.Post("/rebuild", catHnd.Rebuild(cfg, store, logger))

	// quiz scoring
	r.Post("/match", quizHnd.Match(cfg, store, logger))

	return r
}
