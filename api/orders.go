package api

import (
	"context"
	"encoding/json"
	"net/http"

	"tableside/entity"
)

// orderList tolerates both shapes the backend answers with: a bare array
// or {"orders": [...]}.
type orderList []entity.Order

func (l *orderList) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		Orders json.RawMessage `json:"orders"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil && wrapped.Orders != nil {
		// key present; "orders": null is an empty list
		var orders []entity.Order
		if err := json.Unmarshal(wrapped.Orders, &orders); err != nil {
			return err
		}
		if orders == nil {
			orders = []entity.Order{}
		}
		*l = orders
		return nil
	}
	var plain []entity.Order
	if err := json.Unmarshal(b, &plain); err != nil {
		return err
	}
	*l = plain
	return nil
}

// ListOrders fetches the admin dashboard's order list.
func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var out orderList
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches a single order by its external order id.
func (c *Client) Order(ctx context.Context, orderID string) (*entity.Order, error) {
	var out entity.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentOrders fetches a customer's recent orders by phone number.
func (c *Client) RecentOrders(ctx context.Context, phone string) ([]entity.Order, error) {
	var out orderList
	if err := c.do(ctx, http.MethodGet, "/orders/recent/"+phone, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckoutIn is the order-creation request built from a table's cart.
type CheckoutIn struct {
	TableNumber   string             `json:"tableNumber"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []entity.OrderItem `json:"items"`
}

// CreateOrder submits a checkout and returns the created order.
func (c *Client) CreateOrder(ctx context.Context, in CheckoutIn) (*entity.Order, error) {
	var out entity.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+orderID, nil, nil, nil)
}
