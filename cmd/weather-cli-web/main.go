package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/config"
	"github.com/pfrederiksen/weather-cli/internal/logger"
	"github.com/pfrederiksen/weather-cli/internal/web"
)

var (
	addr    = flag.String("addr", "", "Listen address (default :$PORT or :8080)")
	verbose = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := logger.LevelInfo
	if *verbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading configuration", nil, err)
		os.Exit(1)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		log.Error("loading configuration", nil, err)
		os.Exit(1)
	}

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = ":" + cfg.Port
	}

	srv := web.NewServer(cfg.NewClient(), log)

	s := &http.Server{
		Addr:              listenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", logger.Fields{"addr": listenAddr, "units": string(cfg.Units)})
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", nil, err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	log.Info("shutdown complete", nil)
}
