package app

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/langowen/exchangeit/deploy/config"
	"github.com/langowen/exchangeit/internal/api_service/adapter/storage/postgres"
	"github.com/langowen/exchangeit/internal/api_service/adapter/storage/redis"
	"github.com/langowen/exchangeit/internal/api_service/ports/http/public"
	"github.com/langowen/exchangeit/internal/api_service/service"
	"github.com/langowen/exchangeit/internal/currency/adapter/api_client/ecornell"
	"github.com/langowen/exchangeit/internal/currency/exchange"
	"github.com/langowen/exchangeit/internal/metrics"
	redisPack "github.com/redis/go-redis/v9"
)

type App struct {
	cfg     *config.Config
	closers []func()
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Start wires the service and runs the HTTP server until ctx is canceled.
// The returned channel closes once the server and its connections are shut down.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	slog.With("config", a.cfg).Info("starting server")

	client := a.initClient()
	slog.Info("Exchange client initialized")

	var storage service.Storage
	if a.cfg.Storage.Enabled {
		storage = a.initDatabase(ctx)
		slog.Info("Storage initialized")
	}

	var publisher service.Publisher
	if a.cfg.Redis.Enabled {
		publisher = a.initRedis(ctx)
		slog.Info("Redis client initialized")
	}

	apiService, err := service.NewService(client, storage, publisher)
	if err != nil {
		log.Fatalln("Failed to initialize service", "error", err)
	}
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, apiService, a.cfg)
	slog.Info("server started", "port", a.cfg.HTTPServer.Port)

	done := make(chan struct{})
	go func() {
		<-serverDone
		for _, closer := range a.closers {
			closer()
		}
		close(done)
	}()

	return done
}

// InitLogger installs the process-wide text logger at level.
func InitLogger(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

func (a *App) initClient() *exchange.Client {
	transport := metrics.NewInstrumentedTransport(ecornell.NewHTTPClient(a.cfg.Service.Timeout))

	client, err := exchange.NewClient(transport, a.cfg.Settings())
	if err != nil {
		log.Fatalln("Failed to initialize exchange client", "error", err)
	}

	return client
}

func (a *App) initDatabase(ctx context.Context) *postgres.Storage {
	pgStorage, pool, err := postgres.InitStorage(ctx, a.cfg.DSN(), a.cfg.Storage.Timeout)
	if err != nil {
		log.Fatalln("Failed to initialize PostgresSQL storage", "error", err)
	}
	a.closers = append(a.closers, pool.Close)

	return pgStorage
}

func (a *App) initRedis(ctx context.Context) *redis.Storage {
	options := &redisPack.Options{
		Addr:     a.cfg.Redis.Host,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	}

	rdStorage, client, err := redis.InitStorage(ctx, options, a.cfg.Redis.Channel)
	if err != nil {
		log.Fatalln("Failed to initialize Redis storage", "error", err)
	}
	a.closers = append(a.closers, func() { _ = client.Close() })

	return rdStorage
}
