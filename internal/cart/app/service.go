package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/miamore/shopd/internal/cart/domain"
)

var ErrInvalidSession = errors.New("invalid session id")

// Cart is an ordered snapshot of one session's ledger plus its aggregates.
type Cart struct {
	SessionID  string
	Items      []domain.LineItem
	TotalItems int64
	TotalPrice int64
}

// Service keeps one ledger per session in memory. Carts live for the lifetime
// of the process and are gone after a restart; there is no persistence behind
// this store.
type Service struct {
	catalog ProductGetter

	mu      sync.Mutex
	ledgers map[string]*domain.Ledger
}

func NewService(catalog ProductGetter) *Service {
	return &Service{
		catalog: catalog,
		ledgers: make(map[string]*domain.Ledger),
	}
}

// GetCart returns the session's cart, or an empty one for unknown sessions.
func (s *Service) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[sessionID]
	if !ok {
		return Cart{SessionID: sessionID}, nil
	}
	return snapshot(sessionID, ledger), nil
}

// AddItem snapshots the product's name, price and discount and merges it into
// the session's ledger, creating the ledger on first use.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID, quantity int64) (Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Cart{}, ErrInvalidSession
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.getOrCreate(sessionID)
	ledger.Add(domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Discount:  p.Discount,
		Quantity:  quantity,
	})
	return snapshot(sessionID, ledger), nil
}

// SetItemQuantity applies max(1, quantity) to the row; unknown sessions and
// unknown product ids are no-ops.
func (s *Service) SetItemQuantity(ctx context.Context, sessionID string, productID, quantity int64) (Cart, error) {
	return s.mutate(sessionID, func(l *domain.Ledger) {
		l.SetQuantity(productID, quantity)
	})
}

func (s *Service) IncrementItem(ctx context.Context, sessionID string, productID int64) (Cart, error) {
	return s.mutate(sessionID, func(l *domain.Ledger) {
		l.Increment(productID)
	})
}

func (s *Service) DecrementItem(ctx context.Context, sessionID string, productID int64) (Cart, error) {
	return s.mutate(sessionID, func(l *domain.Ledger) {
		l.Decrement(productID)
	})
}

// RemoveItem deletes the row with the given product id; a no-op when absent.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (Cart, error) {
	return s.mutate(sessionID, func(l *domain.Ledger) {
		l.Remove(productID)
	})
}

// ClearCart empties the session's cart unconditionally; confirming with the
// user first is the caller's responsibility.
func (s *Service) ClearCart(ctx context.Context, sessionID string) (Cart, error) {
	return s.mutate(sessionID, func(l *domain.Ledger) {
		l.Clear()
	})
}

func (s *Service) mutate(sessionID string, fn func(*domain.Ledger)) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, ok := s.ledgers[sessionID]
	if !ok {
		return Cart{SessionID: sessionID}, nil
	}
	fn(ledger)
	return snapshot(sessionID, ledger), nil
}

// getOrCreate must be called with the mutex held.
func (s *Service) getOrCreate(sessionID string) *domain.Ledger {
	ledger, ok := s.ledgers[sessionID]
	if !ok {
		ledger = &domain.Ledger{}
		s.ledgers[sessionID] = ledger
	}
	return ledger
}

func snapshot(sessionID string, l *domain.Ledger) Cart {
	return Cart{
		SessionID:  sessionID,
		Items:      l.Items(),
		TotalItems: l.TotalItems(),
		TotalPrice: l.TotalPrice(),
	}
}
