package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

type Exchanger interface {
	Exchange(ctx context.Context, src, dst string, amt float64) (float64, error)
	IsCurrency(ctx context.Context, code string) (bool, error)
}

type Service struct {
	exchanger Exchanger
	storage   Storage
	publisher Publisher
	now       func() time.Time
}

// NewService wires the exchanger with the optional journal and event publisher.
// Either of them may be nil.
func NewService(exchanger Exchanger, storage Storage, publisher Publisher) (*Service, error) {
	if exchanger == nil {
		return nil, errors.New("service.NewService: nil exchanger")
	}

	return &Service{
		exchanger: exchanger,
		storage:   storage,
		publisher: publisher,
		now:       time.Now,
	}, nil
}

func (s *Service) Exchange(ctx context.Context, src, dst string, amt float64) (*entities.Exchange, error) {
	const op = "service.Exchange"

	result, err := s.exchanger.Exchange(ctx, src, dst, amt)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	exchange := entities.NewExchange(src, dst, amt, result, s.now().UTC())

	if s.storage != nil {
		if err := s.storage.SaveExchange(ctx, exchange); err != nil {
			slog.Error("failed to save exchange", "op", op, "error", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishExchange(ctx, exchange); err != nil {
			slog.Error("failed to publish exchange", "op", op, "error", err)
		}
	}

	return exchange, nil
}

func (s *Service) IsCurrency(ctx context.Context, code string) (bool, error) {
	const op = "service.IsCurrency"

	valid, err := s.exchanger.IsCurrency(ctx, code)
	if err != nil {
		return false, errors.Wrap(err, op)
	}

	return valid, nil
}

func (s *Service) FetchExchanges(ctx context.Context, limit int) ([]entities.Exchange, error) {
	const op = "service.FetchExchanges"

	if s.storage == nil {
		return nil, errors.Wrap(entities.ErrJournalDisabled, op)
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	exchanges, err := s.storage.GetExchanges(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return exchanges, nil
}
