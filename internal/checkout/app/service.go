package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/miamore/shopd/internal/checkout/domain"
)

// Currency of every catalog price. The shop trades in a single currency.
const Currency = "RUB"

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]CartItem, error)
}

// CartItem carries the cart's price snapshot: UnitPrice is the per-unit
// price with any discount already applied.
type CartItem struct {
	ProductID int64
	Name      string
	Quantity  int64
	UnitPrice int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (Product, error)
}

type Product struct {
	ID   int64
	Name string
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	contact       domain.Contact
	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, contact domain.Contact, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		contact:       contact,
		maxConcurrent: maxConcurrent,
	}
}

var ErrEmptyCart = errors.New("cart is empty")

// Quote prices the session's cart and attaches the shop's contact details.
// Quoting is informational only: the cart is not cleared, nothing is
// persisted, and no payment service is called.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		idx := idx
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			// Verify the product still exists in the catalog; the price stays
			// the cart's snapshot.
			if _, err := s.Catalog.GetProduct(ctx, it.ProductID); err != nil {
				return fmt.Errorf("failed to get product %d: %w", it.ProductID, err)
			}

			lineTotal := it.UnitPrice * it.Quantity
			lines[idx] = domain.QuoteLine{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: domain.Money{
					Currency: Currency,
					Amount:   it.UnitPrice,
				},
				LineTotal: domain.Money{
					Currency: Currency,
					Amount:   lineTotal,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var totalAmount int64
	for _, line := range lines {
		totalAmount += line.LineTotal.Amount
	}

	quote := domain.Quote{
		Lines: lines,
		Total: domain.Money{
			Currency: Currency,
			Amount:   totalAmount,
		},
		Contact: s.contact,
		Message: fmt.Sprintf("Order for %d %s placed. Call %s to pay.", totalAmount, Currency, s.contact.Phone),
	}

	return quote, nil
}
