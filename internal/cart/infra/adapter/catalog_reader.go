package adapter

import (
	"context"

	cartapp "github.com/miamore/shopd/internal/cart/app"
	catalogapp "github.com/miamore/shopd/internal/catalog/app"
)

// CatalogServiceReader feeds the cart service the product slice it snapshots
// when an item is added.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int64) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Discount: p.Discount,
	}, nil
}
