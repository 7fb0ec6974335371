package cart

import (
	"sync"
)

// Summary aggregates a cart snapshot with derived totals.
// Totals are recomputed from the items on every read, never cached.
type Summary struct {
	Items         []LineItem
	ItemCount     int
	SubtotalCents int64
}

// Observer is notified synchronously after every successful mutation.
type Observer func(Summary)

// Session owns one cart for the lifetime of a visitor session and is the
// only way to mutate it. Actions are serialized through a mutex and applied
// via the pure reducer; observers are notified before the mutator returns,
// so any subsequent read sees the mutation.
type Session struct {
	mu        sync.Mutex
	items     []LineItem
	observers []Observer

	// initialized guards against reads on a zero-value Session, which is
	// a programmer error and must fail loudly rather than return defaults.
	initialized bool
}

// NewSession creates an empty cart session.
func NewSession() *Session {
	return &Session{
		items:       []LineItem{},
		initialized: true,
	}
}

// AddItem adds the item to the cart, or increments the quantity of an
// existing line with the same ID.
func (s *Session) AddItem(item LineItem) {
	s.apply(Add{Item: item})
}

// IncreaseQty increments the quantity of the item with the given ID.
// Unknown IDs are a no-op.
func (s *Session) IncreaseQty(id string) {
	s.apply(Increase{ID: id})
}

// DecreaseQty decrements the quantity of the item with the given ID,
// removing it entirely when the quantity would reach zero.
// Unknown IDs are a no-op.
func (s *Session) DecreaseQty(id string) {
	s.apply(Decrease{ID: id})
}

// RemoveItem drops the item with the given ID regardless of quantity.
// Unknown IDs are a no-op.
func (s *Session) RemoveItem(id string) {
	s.apply(Remove{ID: id})
}

// Items returns a copy of the current line items in insertion order.
func (s *Session) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return clone(s.items)
}

// TotalItems returns the sum of all quantities.
func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return TotalItems(s.items)
}

// SubtotalCents returns the sum of price times quantity over all items.
func (s *Session) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return SubtotalCents(s.items)
}

// Summary returns the items and both derived totals in one consistent read.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.summaryLocked()
}

// Subscribe registers an observer that is called synchronously after every
// mutation with the post-mutation summary.
func (s *Session) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	s.observers = append(s.observers, fn)
}

func (s *Session) apply(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	s.items = Apply(s.items, action)

	if len(s.observers) == 0 {
		return
	}
	summary := s.summaryLocked()
	for _, fn := range s.observers {
		fn(summary)
	}
}

func (s *Session) summaryLocked() Summary {
	return Summary{
		Items:         clone(s.items),
		ItemCount:     TotalItems(s.items),
		SubtotalCents: SubtotalCents(s.items),
	}
}

func (s *Session) mustInit() {
	if !s.initialized {
		panic("cart: Session used before initialization; use cart.NewSession")
	}
}
