package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	catSvc "bikematch-service/internal/catalog/service"
	"bikematch-service/internal/config"
	serverhttp "bikematch-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	store := catSvc.NewStore()
	if snap, err := catSvc.ReadSnapshot(cfg.OutputJSON); err != nil {
		logger.Warn().Err(err).Str("path", cfg.OutputJSON).Msg("snapshot not loaded")
	} else if snap != nil {
		store.Replace(snap)
		logger.Info().Int("items", len(snap.Items)).Str("generated_at", snap.GeneratedAt).Msg("snapshot loaded")
	}

	r := serverhttp.NewRouter(cfg, store, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
