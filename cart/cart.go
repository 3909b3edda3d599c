package cart

import (
	"fmt"
	"sync"

	"cookiestore/models"
)

// Notifier receives the user-visible notice raised by cart mutations. Every
// successful mutation emits exactly one notice; no-op calls emit none.
type Notifier interface {
	Notify(title, description string)
}

// Cart owns the ordered line collection for one shopping session
type Cart struct {
	mu       sync.Mutex
	lines    []models.CartLine
	notifier Notifier
}

// New creates an empty cart that reports mutations to notifier.
func New(notifier Notifier) *Cart {
	return &Cart{notifier: notifier}
}

// Add puts qty units of p in the cart. If a line for p already exists its
// quantity is increased; otherwise a new line is appended. A qty below 1 is
// treated as 1.
func (c *Cart) Add(p models.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	merged := false
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Image:     p.Image,
			Category:  p.Category,
		})
	}
	c.mu.Unlock()

	c.notifier.Notify("Added to cart", fmt.Sprintf("%s has been added to your cart.", p.Name))
}

// SetQuantity updates the quantity of the line with the given product id.
// A quantity below 1 removes the line instead. Setting the quantity of an
// absent id is a no-op, not an error.
func (c *Cart) SetQuantity(id, quantity int) {
	if quantity < 1 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	updated := false
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines[i].Quantity = quantity
			updated = true
			break
		}
	}
	c.mu.Unlock()

	if updated {
		c.notifier.Notify("Cart updated", "Item quantity has been updated.")
	}
}

// Remove deletes the line with the given product id. Removing an absent id
// is a no-op, not an error.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	removed := false
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			removed = true
			break
		}
	}
	c.mu.Unlock()

	if removed {
		c.notifier.Notify("Item removed", "Item has been removed from your cart.")
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()

	c.notifier.Notify("Cart cleared", "All items have been removed from your cart.")
}

// Lines returns a copy of the current cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Store keeps one cart per shopping session
type Store struct {
	mu       sync.Mutex
	carts    map[string]*Cart
	notifier Notifier
}

// NewStore creates an empty cart store.
func NewStore(notifier Notifier) *Store {
	return &Store{
		carts:    make(map[string]*Cart),
		notifier: notifier,
	}
}

// Get returns the cart for the given session id, creating it on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New(s.notifier)
		s.carts[sessionID] = c
	}
	return c
}
