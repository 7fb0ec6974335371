// Package cart implements the in-memory shopping cart: a pure action
// reducer over an ordered list of line items, plus the session type that
// owns one cart for the lifetime of a visitor session.
package cart

// LineItem is one row in the cart. Title, price and image are snapshotted
// at add-time and never re-fetched from the product store.
type LineItem struct {
	ID             string
	Title          string
	UnitPriceCents int64
	ImageURL       string
	Quantity       int
}

// Action is a cart state transition. The concrete types below are the only
// way to mutate a cart.
type Action interface {
	isAction()
}

// Add appends a new line item with quantity 1, or increments the quantity
// of an existing item with the same ID. The incoming item's Quantity field
// is ignored; only presence or absence of the ID matters.
type Add struct {
	Item LineItem
}

// Increase increments the quantity of the item with the given ID by 1.
type Increase struct {
	ID string
}

// Decrease decrements the quantity of the item with the given ID by 1.
// An item that would drop to 0 is removed from the cart.
type Decrease struct {
	ID string
}

// Remove drops the item with the given ID regardless of quantity.
type Remove struct {
	ID string
}

func (Add) isAction()      {}
func (Increase) isAction() {}
func (Decrease) isAction() {}
func (Remove) isAction()   {}

// Apply computes the next cart state from the current items and one action.
// It is a pure function: the input slice is never mutated, and every input
// is valid. Actions referencing an unknown ID are no-ops, not errors.
// Insertion order is preserved; incrementing an existing item does not move it.
func Apply(items []LineItem, action Action) []LineItem {
	switch a := action.(type) {
	case Add:
		if i := indexOf(items, a.Item.ID); i >= 0 {
			next := clone(items)
			next[i].Quantity++
			return next
		}
		item := a.Item
		item.Quantity = 1
		next := make([]LineItem, 0, len(items)+1)
		next = append(next, items...)
		return append(next, item)

	case Increase:
		i := indexOf(items, a.ID)
		if i < 0 {
			return items
		}
		next := clone(items)
		next[i].Quantity++
		return next

	case Decrease:
		i := indexOf(items, a.ID)
		if i < 0 {
			return items
		}
		if items[i].Quantity <= 1 {
			return remove(items, i)
		}
		next := clone(items)
		next[i].Quantity--
		return next

	case Remove:
		i := indexOf(items, a.ID)
		if i < 0 {
			return items
		}
		return remove(items, i)
	}

	return items
}

// TotalItems returns the sum of all quantities.
func TotalItems(items []LineItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// SubtotalCents returns the sum of unit price times quantity over all items.
func SubtotalCents(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

func indexOf(items []LineItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func clone(items []LineItem) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)
	return next
}

func remove(items []LineItem, i int) []LineItem {
	next := make([]LineItem, 0, len(items)-1)
	next = append(next, items[:i]...)
	return append(next, items[i+1:]...)
}
