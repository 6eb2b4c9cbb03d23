// Package static serves the product catalog from a YAML file loaded once at
// startup. The shop has no product database: the catalog is fixed data that
// changes by editing the file and restarting.
package static

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miamore/shopd/internal/catalog/app"
	"github.com/miamore/shopd/internal/catalog/domain"
)

type productRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Price       int64  `yaml:"price"`
	Discount    int64  `yaml:"discount"`
	Stock       int64  `yaml:"stock"`
	Limited     bool   `yaml:"limited"`
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

// Source holds the parsed catalog in file order.
type Source struct {
	products []domain.Product
	byID     map[int64]domain.Product
}

// Load reads and validates the catalog file at path.
func Load(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Source from raw YAML, rejecting duplicate ids, negative
// prices and discounts outside [0,100).
func Parse(raw []byte) (*Source, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(file.Products))
	byID := make(map[int64]domain.Product, len(file.Products))

	for i, rec := range file.Products {
		if rec.ID <= 0 {
			return nil, fmt.Errorf("catalog entry %d: id must be positive, got %d", i, rec.ID)
		}
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %d", i, rec.ID)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		}
		if rec.Category == "" {
			return nil, fmt.Errorf("catalog entry %d: category is required", i)
		}
		if rec.Price < 0 {
			return nil, fmt.Errorf("catalog entry %d: price cannot be negative, got %d", i, rec.Price)
		}
		if rec.Discount < 0 || rec.Discount >= 100 {
			return nil, fmt.Errorf("catalog entry %d: discount must be in [0,100), got %d", i, rec.Discount)
		}
		if rec.Stock < 0 {
			return nil, fmt.Errorf("catalog entry %d: stock cannot be negative, got %d", i, rec.Stock)
		}

		p := domain.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Category:    rec.Category,
			Price:       rec.Price,
			Discount:    rec.Discount,
			Stock:       rec.Stock,
			Limited:     rec.Limited,
		}
		products = append(products, p)
		byID[rec.ID] = p
	}

	return &Source{products: products, byID: byID}, nil
}

// List returns the catalog in file order. Callers must not mutate the slice.
func (s *Source) List(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *Source) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, app.ErrNotFound)
	}
	return p, nil
}
