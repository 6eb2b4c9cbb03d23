package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miamore/shopd/internal/catalog/app"
)

const validCatalog = `
products:
  - id: 1
    name: Enchanted Diamond Armor
    description: Full set of enchanted diamond armor
    category: armor
    price: 15
    stock: 10
  - id: 6
    name: Admin for a Day
    description: Admin rights for 24 hours
    category: privileges
    price: 150
    stock: 1
    limited: true
  - id: 7
    name: Admin Forever
    description: Admin rights forever
    category: privileges
    price: 600
    discount: 20
    stock: 3
`

func TestParse(t *testing.T) {
	t.Run("valid catalog keeps file order", func(t *testing.T) {
		src, err := Parse([]byte(validCatalog))
		require.NoError(t, err)

		products, err := src.List(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 3)

		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, int64(6), products[1].ID)
		assert.Equal(t, int64(7), products[2].ID)

		assert.True(t, products[1].Limited)
		assert.Equal(t, int64(20), products[2].Discount)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - {id: 1, name: A, category: armor, price: 5}
  - {id: 1, name: B, category: armor, price: 7}
`))
		assert.ErrorContains(t, err, "duplicate id")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - {id: 1, name: A, category: armor, price: -5}
`))
		assert.ErrorContains(t, err, "price cannot be negative")
	})

	t.Run("discount out of range rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
products:
  - {id: 1, name: A, category: armor, price: 5, discount: 100}
`))
		assert.ErrorContains(t, err, "discount must be in [0,100)")
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		_, err := Parse([]byte("products: ["))
		assert.Error(t, err)
	})
}

func TestSource_Get(t *testing.T) {
	src, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	p, err := src.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Admin Forever", p.Name)

	_, err = src.Get(context.Background(), 99)
	assert.ErrorIs(t, err, app.ErrNotFound)
}
