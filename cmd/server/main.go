package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"midnightcafe/internal/api"
	"midnightcafe/internal/config"
	"midnightcafe/internal/files"
	"midnightcafe/internal/gate"
	"midnightcafe/internal/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := utils.NewWriterLogger(os.Stderr)
	if cfg.LogFile != "" {
		logger, err = utils.NewLogger(cfg.LogFile)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
	}
	defer logger.Close()

	store := files.NewEmailStore(cfg.EmailFile)
	r := api.NewRouter(api.Deps{
		Gate:       gate.New(store, logger),
		Logger:     logger,
		Stylesheet: cfg.Stylesheet,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
	}()

	logger.Infof("Server running on %s (marker %s)", cfg.HTTPAddr, store.Path())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("serve: %v", err)
		log.Fatal(err)
	}
	logger.Info("Server stopped")
}
