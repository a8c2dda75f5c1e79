package service

import (
	"context"

	"github.com/langowen/exchangeit/internal/entities"
)

type Storage interface {
	SaveExchange(ctx context.Context, exchange *entities.Exchange) error
	GetExchanges(ctx context.Context, limit int) ([]entities.Exchange, error)
}
