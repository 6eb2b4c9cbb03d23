package app

import (
	"context"

	"github.com/miamore/shopd/internal/catalog/domain"
)

type ProductSource interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
}
