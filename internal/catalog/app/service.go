package app

import (
	"context"
	"errors"
	"strings"

	"github.com/miamore/shopd/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	source ProductSource
}

func NewService(source ProductSource) *Service {
	return &Service{
		source: source,
	}
}

// ListProducts returns the catalog filtered by category. An empty category
// behaves like the "all" sentinel; an unknown category yields an empty list.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.CategoryAll
	}

	products, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(products, category), nil
}

// ListLimited returns the products flagged for the limited-offers section.
func (s *Service) ListLimited(ctx context.Context) ([]domain.Product, error) {
	products, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SelectLimited(products), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.source.Get(ctx, id)
}
