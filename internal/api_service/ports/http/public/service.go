package public

import (
	"context"

	"github.com/langowen/exchangeit/internal/entities"
)

type Service interface {
	Exchange(ctx context.Context, src, dst string, amt float64) (*entities.Exchange, error)
	IsCurrency(ctx context.Context, code string) (bool, error)
	FetchExchanges(ctx context.Context, limit int) ([]entities.Exchange, error)
}
