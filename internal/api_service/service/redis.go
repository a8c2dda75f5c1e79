package service

import (
	"context"

	"github.com/langowen/exchangeit/internal/entities"
)

type Publisher interface {
	PublishExchange(ctx context.Context, exchange *entities.Exchange) error
}
