package services

import (
	"sync"

	"tomyumkitchen/entity"
)

// CartLine is one (dish, quantity) pair. The dish is a snapshot taken when the
// line was first added.
type CartLine struct {
	Dish    entity.Dish `json:"dish"`
	Qty     int         `json:"qty"`
	Options string      `json:"options"`
}

// CartService keeps one in-memory cart per session. Carts live only for the
// session and are never persisted; checkout reads the lines and the controller
// clears the cart afterwards.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]CartLine
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]CartLine)}
}

// Add appends a line, or bumps the quantity when the dish is already in the
// cart. Line order is insertion order.
func (s *CartService) Add(sessionID string, dish entity.Dish, qty int, options string) {
	if qty <= 0 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Dish.ID == dish.ID {
			lines[i].Qty += qty
			if options != "" {
				lines[i].Options = options
			}
			return
		}
	}
	s.carts[sessionID] = append(lines, CartLine{Dish: dish, Qty: qty, Options: options})
}

// Remove drops the line for a dish; no-op when absent.
func (s *CartService) Remove(sessionID string, dishID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Dish.ID == dishID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets an absolute quantity; qty <= 0 removes the line.
func (s *CartService) SetQuantity(sessionID string, dishID uint, qty int) {
	if qty <= 0 {
		s.Remove(sessionID, dishID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].Dish.ID == dishID {
			lines[i].Qty = qty
			return
		}
	}
}

// Lines returns a copy of the cart in insertion order.
func (s *CartService) Lines(sessionID string) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.carts[sessionID]...)
}

func (s *CartService) Subtotal(sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subtotal int64
	for _, l := range s.carts[sessionID] {
		subtotal += l.Dish.Price * int64(l.Qty)
	}
	return subtotal
}

func (s *CartService) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, l := range s.carts[sessionID] {
		n += l.Qty
	}
	return n
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
