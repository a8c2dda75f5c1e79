package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Publisher is the part of redis.UniversalClient used to announce exchanges.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type Storage struct {
	rdb     Publisher
	channel string
}

func NewStorage(client Publisher, channel string) *Storage {
	return &Storage{
		rdb:     client,
		channel: channel,
	}
}

// InitStorage connects to Redis. The caller closes the returned client.
func InitStorage(ctx context.Context, options *redis.Options, channel string) (*Storage, *redis.Client, error) {
	const op = "storage.redis.InitStorage"

	redisClient := redis.NewClient(options)

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		_ = redisClient.Close()
		return nil, nil, errors.Wrap(err, op)
	}

	return NewStorage(redisClient, channel), redisClient, nil
}

func (s *Storage) PublishExchange(ctx context.Context, exchange *entities.Exchange) error {
	const op = "storage.redis.PublishExchange"

	payload, err := json.Marshal(exchange)
	if err != nil {
		return errors.Wrap(err, op)
	}

	receivers, err := s.rdb.Publish(ctx, s.channel, payload).Result()
	if err != nil {
		return errors.Wrap(err, op)
	}

	slog.Debug("exchange published", "channel", s.channel, "receivers", receivers)

	return nil
}
