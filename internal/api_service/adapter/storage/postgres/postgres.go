package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS exchanges (
		id         BIGSERIAL PRIMARY KEY,
		src        TEXT             NOT NULL,
		dst        TEXT             NOT NULL,
		amount     DOUBLE PRECISION NOT NULL,
		result     DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ      NOT NULL
	)
`

// DB is the subset of *pgxpool.Pool the journal needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Storage struct {
	db DB
}

func NewStorage(db DB) *Storage {
	return &Storage{
		db: db,
	}
}

// InitStorage connects to PostgreSQL and creates the journal table. The caller
// closes the returned pool.
func InitStorage(ctx context.Context, dsn string, timeout time.Duration) (*Storage, *pgxpool.Pool, error) {
	const op = "storage.postgres.InitStorage"

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, errors.Wrap(err, op)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 10 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, op)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, op)
	}

	storage := NewStorage(pool)

	if err = storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, op)
	}

	return storage, pool, nil
}

func (s *Storage) initSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schema)
	return err
}

func (s *Storage) SaveExchange(ctx context.Context, exchange *entities.Exchange) error {
	const op = "storage.postgres.SaveExchange"

	_, err := s.db.Exec(ctx, `
		INSERT INTO exchanges (src, dst, amount, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, exchange.Src, exchange.Dst, exchange.Amount, exchange.Result, exchange.CreatedAt)
	if err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

func (s *Storage) GetExchanges(ctx context.Context, limit int) ([]entities.Exchange, error) {
	const op = "storage.postgres.GetExchanges"

	rows, err := s.db.Query(ctx, `
		SELECT src, dst, amount, result, created_at
		FROM exchanges
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	exchanges := make([]entities.Exchange, 0, limit)
	for rows.Next() {
		var e entities.Exchange
		if err := rows.Scan(&e.Src, &e.Dst, &e.Amount, &e.Result, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, op)
		}
		exchanges = append(exchanges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}

	return exchanges, nil
}
