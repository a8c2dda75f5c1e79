package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/langowen/exchangeit/deploy/config"
	"github.com/langowen/exchangeit/internal/api_service/app"
)

func main() {
	cfg := config.NewConfig()

	app.InitLogger(cfg.LogLevel())
	slog.Info("exchangeit api starting",
		"port", cfg.HTTPServer.Port,
		"service_url", cfg.Service.URL,
		"journal", cfg.Storage.Enabled,
		"events", cfg.Redis.Enabled,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverDone := app.NewApp(cfg).Start(ctx)

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping server")

	<-serverDone
	slog.Info("server stopped")
}
