package app

import "context"

// Product is the slice of a catalog product the cart snapshots at add time.
type Product struct {
	ID       int64
	Name     string
	Price    int64
	Discount int64
}

type ProductGetter interface {
	GetProduct(ctx context.Context, id int64) (Product, error)
}
