package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"tableside/api"
	"tableside/entity"

	"go.uber.org/zap"
)

// OrderBoard holds the admin dashboard's order list. The fetch path owns
// list membership; the push path only patches fields on records already in
// the list. A push event for an order the board has never fetched is
// dropped, never inserted.
type OrderBoard struct {
	api *api.Client
	log *zap.Logger

	mu     sync.Mutex
	orders []entity.Order
}

func NewOrderBoard(client *api.Client, log *zap.Logger) *OrderBoard {
	return &OrderBoard{api: client, log: log}
}

// Refresh replaces the board with a fresh fetch. A slow refresh landing
// after a newer push event will overwrite it with stale data; the next
// push or refresh converges again.
func (b *OrderBoard) Refresh(ctx context.Context) error {
	list, err := b.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	b.SetOrders(list)
	return nil
}

func (b *OrderBoard) SetOrders(list []entity.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append([]entity.Order(nil), list...)
}

func (b *OrderBoard) Orders() []entity.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]entity.Order(nil), b.orders...)
}

// Apply reconciles one push update into the list: match on _id or orderId,
// shallow-merge the event's fields onto the record (event fields win).
// Reports whether a record was patched.
func (b *OrderBoard) Apply(u entity.OrderUpdate) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.orders {
		if u.Matches(&b.orders[i]) {
			u.ApplyTo(&b.orders[i])
			return true
		}
	}
	return false
}

// HandleEvent is the admin_order_updated handler wired into the live
// channel.
func (b *OrderBoard) HandleEvent(data json.RawMessage) {
	var u entity.OrderUpdate
	if err := json.Unmarshal(data, &u); err != nil {
		b.log.Warn("bad order update payload", zap.Error(err))
		return
	}
	if b.Apply(u) {
		b.log.Info("order updated",
			zap.String("orderId", u.OrderID), zap.String("_id", u.ID))
	} else {
		b.log.Debug("order update for unknown order dropped",
			zap.String("orderId", u.OrderID), zap.String("_id", u.ID))
	}
}

// Filter narrows the held list the way the dashboard's toolbar does:
// status "all"/"" matches everything, the query matches order id
// (case-insensitive) or phone substring.
func (b *OrderBoard) Filter(status entity.OrderStatus, query string) []entity.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]entity.Order, 0, len(b.orders))
	for _, o := range b.orders {
		if status != "" && status != "all" && o.OrderStatus != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.OrderID), q) &&
			!strings.Contains(o.CustomerPhone, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}
