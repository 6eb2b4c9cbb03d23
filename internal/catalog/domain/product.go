package domain

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Product is one catalog entry. Price is in whole currency units before
// discount; Discount is a percentage in [0,100), zero meaning none.
// Stock is a display-only counter and is never decremented by cart activity.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       int64
	Discount    int64
	Stock       int64
	Limited     bool
}

// FilterByCategory returns the products whose category equals the argument,
// preserving order. The "all" sentinel returns the input as-is.
func FilterByCategory(products []Product, category string) []Product {
	if category == CategoryAll {
		return products
	}

	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SelectLimited returns the products flagged for the limited-offers section,
// preserving order.
func SelectLimited(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.Limited {
			out = append(out, p)
		}
	}
	return out
}
