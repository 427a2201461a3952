// Command dashboard-api serves the dashboard's view descriptors over HTTP.
//
//	SESSION_SECRET=$(go run ./cmd/session-secret) go run ./cmd/dashboard-api
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/app"
	"github.com/kyra-labs/internship-dashboard/internal/config"
	"github.com/kyra-labs/internship-dashboard/internal/logging"
	"github.com/kyra-labs/internship-dashboard/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireSessionSecret()
	}
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logging.New(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialise dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.Close()

	srv, err := server.NewServer(cfg, deps.Registry, deps.Registrations, log)
	if err != nil {
		log.Error("failed to build server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	httpSrv := srv.NewHTTPServer()

	go func() {
		log.Info("server started", slog.String("address", cfg.BindAddr), slog.String("env", cfg.Env))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return
	}
	log.Info("server stopped gracefully")
}
