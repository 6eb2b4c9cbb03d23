package app_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/miamore/shopd/internal/cart/app"
	catalogapp "github.com/miamore/shopd/internal/catalog/app"
)

type fakeCatalog struct {
	products map[int64]app.Product
}

func (f fakeCatalog) GetProduct(ctx context.Context, id int64) (app.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return app.Product{}, fmt.Errorf("product %d: %w", id, catalogapp.ErrNotFound)
	}
	return p, nil
}

func newTestService() *app.Service {
	return app.NewService(fakeCatalog{products: map[int64]app.Product{
		1: {ID: 1, Name: "Enchanted Diamond Armor", Price: 15},
		6: {ID: 6, Name: "Admin for a Day", Price: 150},
		7: {ID: 7, Name: "Admin Forever", Price: 600, Discount: 20},
	}})
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	session := uuid.NewString()

	t.Run("snapshots product fields", func(t *testing.T) {
		cart, err := svc.AddItem(ctx, session, 7, 1)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)

		got := cart.Items[0]
		assert.Equal(t, "Admin Forever", got.Name)
		assert.Equal(t, int64(600), got.Price)
		assert.Equal(t, int64(20), got.Discount)
		assert.Equal(t, int64(480), cart.TotalPrice)
	})

	t.Run("unknown product -> not found", func(t *testing.T) {
		_, err := svc.AddItem(ctx, session, 999, 1)
		assert.ErrorIs(t, err, catalogapp.ErrNotFound)
	})

	t.Run("empty session -> invalid", func(t *testing.T) {
		_, err := svc.AddItem(ctx, "  ", 1, 1)
		assert.ErrorIs(t, err, app.ErrInvalidSession)
	})
}

func TestService_SessionIsolation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	a, b := uuid.NewString(), uuid.NewString()

	_, err := svc.AddItem(ctx, a, 1, 2)
	require.NoError(t, err)

	cartB, err := svc.GetCart(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, cartB.Items)
	assert.Equal(t, int64(0), cartB.TotalPrice)

	cartA, err := svc.GetCart(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cartA.TotalItems)
}

func TestService_MutationsOnUnknownSessionAreNoops(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	session := uuid.NewString()

	cart, err := svc.RemoveItem(ctx, session, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = svc.SetItemQuantity(ctx, session, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = svc.ClearCart(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cart.TotalItems)
}

func TestService_QuantityFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	session := uuid.NewString()

	_, err := svc.AddItem(ctx, session, 6, 1)
	require.NoError(t, err)

	cart, err := svc.SetItemQuantity(ctx, session, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(750), cart.TotalPrice)

	cart, err = svc.SetItemQuantity(ctx, session, 6, 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].Quantity)

	cart, err = svc.IncrementItem(ctx, session, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)

	cart, err = svc.DecrementItem(ctx, session, 6)
	require.NoError(t, err)
	cart, err = svc.DecrementItem(ctx, session, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.Items[0].Quantity)

	cart, err = svc.ClearCart(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.TotalPrice)
}

func TestService_ConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	session := uuid.NewString()

	const N = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(ctx, session, 1, 1)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	cart, err := svc.GetCart(ctx, session)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	if got := cart.Items[0].Quantity; got != N {
		t.Fatalf("expected quantity=%d, got=%d", N, got)
	}
}
