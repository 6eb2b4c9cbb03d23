// Package domain holds the cart ledger: an ordered, id-keyed collection of
// line items with discount-aware price aggregation. The ledger is a plain
// in-memory value with no rendering or transport concerns; callers own
// synchronization.
package domain

// LineItem is one row of the cart. Name, Price and Discount are snapshots of
// the product at the time it was added; later catalog changes do not affect
// rows already in the cart.
type LineItem struct {
	ProductID int64
	Name      string
	Price     int64
	Discount  int64
	Quantity  int64
}

// EffectivePrice is the per-unit price after the percentage discount, rounded
// half-up to the nearest whole currency unit.
func (it LineItem) EffectivePrice() int64 {
	if it.Discount == 0 {
		return it.Price
	}
	return (it.Price*(100-it.Discount) + 50) / 100
}

// LineTotal is EffectivePrice times Quantity.
func (it LineItem) LineTotal() int64 {
	return it.EffectivePrice() * it.Quantity
}

// Ledger keeps at most one line item per product id and preserves insertion
// order across every mutation except removal.
type Ledger struct {
	items []LineItem
}

// TotalItems returns the sum of quantities, 0 for an empty ledger.
func (l *Ledger) TotalItems() int64 {
	var n int64
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice returns the order total. It is recomputed on every call rather
// than maintained incrementally.
func (l *Ledger) TotalPrice() int64 {
	var sum int64
	for _, it := range l.items {
		sum += it.LineTotal()
	}
	return sum
}

// Items returns an ordered copy of the line items for display.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of distinct line items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Add appends a new line item, or adds its quantity to the existing row with
// the same product id. The snapshot fields of an existing row are kept.
// Quantities below 1 are clamped to 1.
func (l *Ledger) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range l.items {
		if l.items[i].ProductID == item.ProductID {
			l.items[i].Quantity += item.Quantity
			return
		}
	}
	l.items = append(l.items, item)
}

// SetQuantity sets the quantity of the row with the given id, clamping values
// below 1 up to 1. Unknown ids are a no-op.
func (l *Ledger) SetQuantity(id int64, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range l.items {
		if l.items[i].ProductID == id {
			l.items[i].Quantity = quantity
			return
		}
	}
}

// Increment raises the row's quantity by one. Unknown ids are a no-op.
func (l *Ledger) Increment(id int64) {
	for i := range l.items {
		if l.items[i].ProductID == id {
			l.SetQuantity(id, l.items[i].Quantity+1)
			return
		}
	}
}

// Decrement lowers the row's quantity by one, clamping at 1; it never removes
// the row. Unknown ids are a no-op.
func (l *Ledger) Decrement(id int64) {
	for i := range l.items {
		if l.items[i].ProductID == id {
			l.SetQuantity(id, l.items[i].Quantity-1)
			return
		}
	}
}

// Remove deletes the row with the given id; unknown ids are a no-op. The
// order of the remaining rows is unchanged.
func (l *Ledger) Remove(id int64) {
	for i := range l.items {
		if l.items[i].ProductID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.items = nil
}
