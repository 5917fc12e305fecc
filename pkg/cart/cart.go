package cart

import (
	"log"
	"sync"
)

// Item is a single cart line. Quantity is always >= 1 while the line exists;
// setting it to zero or below removes the line.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	BusinessID  string  `json:"businessId,omitempty"`
}

// Store holds the cart lines plus derived totals. Totals are recomputed from
// the full line list on every mutation and on load, never carried
// incrementally, so they cannot drift from the lines.
type Store struct {
	mu         sync.Mutex
	items      []Item
	totalItems int
	totalPrice float64
	storage    Storage
}

// NewStore creates a cart store. If storage is non-nil, a previously persisted
// snapshot is loaded and its totals recomputed rather than trusted.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage: storage,
	}
	if storage != nil {
		items, err := loadSnapshot(storage)
		if err != nil {
			log.Printf("Failed to load cart snapshot, starting empty: %v", err)
		} else {
			s.items = items
		}
	}
	s.recalculate()
	return s
}

// AddToCart adds a product to the cart. If the product is already present its
// quantity is incremented, otherwise it is appended with quantity 1. The
// Quantity field of the argument is ignored.
func (s *Store) AddToCart(product Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			s.recalculate()
			s.persist()
			return
		}
	}
	product.Quantity = 1
	s.items = append(s.items, product)
	s.recalculate()
	s.persist()
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line entirely.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity > 0 {
		for i := range s.items {
			if s.items[i].ID == itemID {
				s.items[i].Quantity = quantity
				break
			}
		}
	} else {
		s.items = removeItem(s.items, itemID)
	}
	s.recalculate()
	s.persist()
}

// RemoveFromCart removes a line by product ID.
func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = removeItem(s.items, itemID)
	s.recalculate()
	s.persist()
}

// ClearCart removes all lines.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.recalculate()
	s.persist()
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the summed quantity over all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

// TotalPrice returns the summed price*quantity over all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPrice
}

// recalculate recomputes both derived totals from the full line list.
// Callers must hold the mutex.
func (s *Store) recalculate() {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range s.items {
		totalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	s.totalItems = totalItems
	s.totalPrice = totalPrice
}

// persist writes a snapshot to storage, best effort. Callers must hold the mutex.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := saveSnapshot(s.storage, s.items, s.totalItems, s.totalPrice); err != nil {
		log.Printf("Failed to persist cart snapshot: %v", err)
	}
}

func removeItem(items []Item, itemID string) []Item {
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	return kept
}
