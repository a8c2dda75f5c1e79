package config

import (
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/langowen/exchangeit/internal/currency/exchange"
	"github.com/pkg/errors"
)

type Config struct {
	Service    Service
	HTTPServer HTTPServer
	Storage    Storage
	Redis      Redis
	Log        Log
}

type Service struct {
	URL           string        `env:"SERVICE_URL" env-default:"https://ecpyfac.ecornell.com/python/currency/fixed"`
	APIKey        string        `env:"APIKEY" env-required:"true"`
	Timeout       time.Duration `env:"SERVICE_TIMEOUT" env-default:"10s"`
	ProbeCurrency string        `env:"SERVICE_PROBE_CURRENCY" env-default:"EUR"`
	ProbeAmount   float64       `env:"SERVICE_PROBE_AMOUNT" env-default:"2"`
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8082"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Storage struct {
	Enabled  bool          `env:"BD_ENABLED" env-default:"false"`
	Timeout  time.Duration `env:"BD_TIMEOUT" env-default:"10s"`
	Host     string        `env:"BD_HOST" env-default:"localhost"`
	Port     int           `env:"BD_PORT" env-default:"5432"`
	User     string        `env:"BD_USER"`
	Password string        `env:"BD_PASSWORD"`
	DBName   string        `env:"BD_DBNAME"`
	SSLMode  string        `env:"BD_SSL_MODE" env-default:"disable"`
	Schema   string        `env:"BD_SCHEMA" env-default:"public"`
}

type Redis struct {
	Enabled  bool   `env:"REDIS_ENABLED" env-default:"false"`
	Host     string `env:"REDIS_HOST" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	Channel  string `env:"REDIS_CHANNEL" env-default:"exchange_completed"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" env-default:"debug"`
}

// NewConfig reads .env and the environment. A missing APIKEY stops the process.
func NewConfig() *Config {
	cfg, err := ReadConfig(".env")
	if err != nil {
		log.Fatalf("Error reading env: %v", err)
	}

	return cfg
}

func ReadConfig(path string) (*Config, error) {
	const op = "config.ReadConfig"

	cfg := &Config{}

	_ = godotenv.Load(path)

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, op)
	}

	// The exchange client treats a zero probe amount as unset.
	if cfg.Service.ProbeAmount == 0 {
		return nil, errors.Errorf("%s: SERVICE_PROBE_AMOUNT must not be zero", op)
	}

	return cfg, nil
}

// Settings is the part of the config the exchange client is built from.
func (c *Config) Settings() exchange.Settings {
	return exchange.Settings{
		URL:           c.Service.URL,
		APIKey:        c.Service.APIKey,
		ProbeCurrency: c.Service.ProbeCurrency,
		ProbeAmount:   c.Service.ProbeAmount,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Storage.Host,
		c.Storage.Port,
		c.Storage.User,
		c.Storage.Password,
		c.Storage.DBName,
		c.Storage.SSLMode,
		c.Storage.Schema,
	)
}

func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelDebug
	}

	return level
}

// LogValue keeps the api key and passwords out of startup logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("service_url", c.Service.URL),
		slog.Duration("service_timeout", c.Service.Timeout),
		slog.String("http_port", c.HTTPServer.Port),
		slog.Bool("storage", c.Storage.Enabled),
		slog.Bool("redis", c.Redis.Enabled),
		slog.String("log_level", c.Log.Level),
	)
}
