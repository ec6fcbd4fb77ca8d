package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	catSvc "bikematch-service/internal/catalog/service"
	"bikematch-service/internal/config"
)

// Rebuild runs one pipeline pass and swaps the served snapshot on success.
// Source-level failures (unreachable, HTML instead of tabular data) come back
// as 502 with the descriptive message; the previous snapshot stays in place.
func Rebuild(cfg config.Config, store *catSvc.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		snap, err := catSvc.Run(r.Context(), cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("rebuild failed")
			http.Error(w, "rebuild failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		store.Replace(snap)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"generated_at": snap.GeneratedAt,
			"items":        len(snap.Items),
		})

		log.Info().
			Int("items", len(snap.Items)).
			Dur("elapsed", time.Since(start)).
			Msg("rebuild done")
	}
}

// CatalogJSON serves the current snapshot in the same shape as the file on
// disk, so the embedded quiz can consume either transport.
func CatalogJSON(store *catSvc.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.Current()
		if snap == nil {
			http.Error(w, `{"error":"no snapshot generated yet"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(snap)
	}
}
