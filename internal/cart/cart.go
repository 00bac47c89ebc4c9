package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Cart tracks the recognized menu and per-line quantities. Pure state,
// no I/O. gin runs handlers on separate goroutines, so every accessor
// takes the lock; each mutation runs to completion before the next one
// starts.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// ReplaceItems swaps the whole menu atomically. Every quantity resets to
// zero and every line gets a fresh synthetic key, since the backend
// identifies items only by position.
func (c *Cart) ReplaceItems(items []MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, len(items))
	for i, item := range items {
		lines[i] = Line{
			Key:      uuid.New().String(),
			Item:     item,
			Quantity: 0,
		}
	}
	c.lines = lines
}

// Increment bumps the quantity of the line with the given key. The bool
// reports whether the key matched a line; callers decide what a miss
// means.
func (c *Cart) Increment(key string) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Key == key {
			c.lines[i].Quantity++
			return c.lines[i], true
		}
	}
	return Line{}, false
}

// Decrement lowers the quantity of the line with the given key, flooring
// at zero.
func (c *Cart) Decrement(key string) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Key == key {
			if c.lines[i].Quantity > 0 {
				c.lines[i].Quantity--
			}
			return c.lines[i], true
		}
	}
	return Line{}, false
}

// Total recomputes Σ(price × quantity) on every call. Nothing is cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

// Lines returns a copy of all lines in recognition order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// SelectedLines returns the lines with quantity > 0, preserving
// recognition order, in the shape the order backend expects.
func (c *Cart) SelectedLines() []SelectedLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []SelectedLine
	for _, l := range c.lines {
		if l.Quantity > 0 {
			out = append(out, SelectedLine{
				DisplayName: l.Item.DisplayName(),
				Quantity:    l.Quantity,
				Price:       l.Item.Price,
			})
		}
	}
	return out
}
