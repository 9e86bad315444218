package services

import (
	"math"
	"sync"

	"tableside/entity"
	"tableside/repository"

	"go.uber.org/zap"
)

// CartStore is the single source of truth for one shopper's in-progress
// order on one table. Every mutation is written through to local storage
// keyed by the table identifier, so a restart restores the exact cart.
// Persistence is best-effort: a failed write is logged and the in-memory
// mutation still takes effect.
type CartStore struct {
	repo *repository.CartRepository
	log  *zap.Logger

	mu    sync.Mutex
	table string
	lines []entity.CartLine
}

func NewCartStore(repo *repository.CartRepository, log *zap.Logger) *CartStore {
	return &CartStore{repo: repo, log: log}
}

// CartPatch is a partial update for one cart line; nil fields are left
// untouched.
type CartPatch struct {
	Qty   *int
	Notes *string
}

// Load switches the store to a table and hydrates that table's persisted
// cart. Carts for different tables never share state. A read failure
// starts the table empty.
func (s *CartStore) Load(tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = tableNumber
	s.lines = nil

	c, err := s.repo.Load(tableNumber)
	if err != nil {
		s.log.Warn("cart restore failed, starting empty",
			zap.String("table", tableNumber), zap.Error(err))
		return
	}
	s.lines = append(s.lines, c.Items...)
}

func (s *CartStore) Table() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// AddItem appends a line, or bumps the quantity of an existing line with
// the same menu item id. Notes are last-write-wins; an add without notes
// keeps the note already on the line. Qty below 1 is clamped to 1.
func (s *CartStore) AddItem(line entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.Qty < 1 {
		line.Qty = 1
	}
	for i := range s.lines {
		if s.lines[i].MenuItemID == line.MenuItemID {
			s.lines[i].Qty += line.Qty
			if line.Notes != "" {
				s.lines[i].Notes = line.Notes
			}
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, line)
	s.persist()
}

// UpdateItem applies a partial update to the matching line; no-op when the
// id is not in the cart. Qty is clamped to 1 — dropping a line is
// RemoveItem's job, not a qty-0 update.
func (s *CartStore) UpdateItem(menuItemID string, patch CartPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuItemID != menuItemID {
			continue
		}
		if patch.Qty != nil {
			q := *patch.Qty
			if q < 1 {
				q = 1
			}
			s.lines[i].Qty = q
		}
		if patch.Notes != nil {
			s.lines[i].Notes = *patch.Notes
		}
		s.persist()
		return
	}
}

// RemoveItem deletes the matching line; no-op when absent.
func (s *CartStore) RemoveItem(menuItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuItemID == menuItemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the current table's cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Items returns the cart lines in insertion order.
func (s *CartStore) Items() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartLine(nil), s.lines...)
}

// Total is the sum of price*qty over all lines, rounded to the cent.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.lines {
		total += s.lines[i].Price * float64(s.lines[i].Qty)
	}
	return math.Round(total*100) / 100
}

// ItemCount is the sum of quantities over all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for i := range s.lines {
		n += s.lines[i].Qty
	}
	return n
}

// persist writes the current lines through to storage. Callers hold s.mu.
func (s *CartStore) persist() {
	if s.table == "" {
		return
	}
	cart := entity.Cart{
		TableNumber: s.table,
		Items:       append([]entity.CartLine(nil), s.lines...),
	}
	if err := s.repo.Save(&cart); err != nil {
		s.log.Warn("cart persist failed",
			zap.String("table", s.table), zap.Error(err))
	}
}
