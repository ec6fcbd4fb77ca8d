package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	catSvc "bikematch-service/internal/catalog/service"
	"bikematch-service/internal/config"
	"bikematch-service/internal/quiz/model"
	quizSvc "bikematch-service/internal/quiz/service"
)

type matchRequest struct {
	Answers  model.Answers `json:"answers"`
	Limit    *int          `json:"limit,omitempty"`
	MinScore *int          `json:"min_score,omitempty"`
}

type matchResponse struct {
	GeneratedAt string              `json:"generated_at"`
	Count       int                 `json:"count"`
	Results     []model.ScoredEntry `json:"results"`
}

// Match scores the current catalog against one set of answers. An empty
// catalog or answers nothing matches degrade to an empty result list;
// only an unreadable request body is a client error.
func Match(cfg config.Config, store *catSvc.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}
		defer r.Body.Close()

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		limit := cfg.MatchLimit
		if req.Limit != nil && *req.Limit >= 0 {
			limit = *req.Limit
		}
		minScore := cfg.MatchMinScore
		if req.MinScore != nil {
			minScore = *req.MinScore
		}

		resp := matchResponse{Results: []model.ScoredEntry{}}
		if snap := store.Current(); snap != nil {
			resp.GeneratedAt = snap.GeneratedAt
			resp.Results = quizSvc.Rank(snap.Items, req.Answers, limit, minScore)
		}
		resp.Count = len(resp.Results)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}

		log.Info().
			Int("results", resp.Count).
			Int("limit", limit).
			Int("min_score", minScore).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}
