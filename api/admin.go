package api

import (
	"context"
	"net/http"
	"time"

	"tableside/entity"
)

// StatusPatch updates an order's kitchen status, payment status and/or ETA.
// Empty fields are left out of the request.
type StatusPatch struct {
	Status           entity.OrderStatus   `json:"status,omitempty"`
	PaymentStatus    entity.PaymentStatus `json:"paymentStatus,omitempty"`
	EstimatedReadyAt *time.Time           `json:"estimatedReadyAt,omitempty"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, p StatusPatch) error {
	return c.do(ctx, http.MethodPatch, "/admin/orders/"+orderID+"/status", nil, p, nil)
}

// AdminMenu fetches the full menu including unavailable items.
func (c *Client) AdminMenu(ctx context.Context) ([]entity.MenuItem, error) {
	var out struct {
		Items []entity.MenuItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/menu", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// SeedResult reports what a bulk upload inserted.
type SeedResult struct {
	Inserted int      `json:"inserted"`
	Items    []string `json:"items"`
}

func (c *Client) SeedMenu(ctx context.Context, items []entity.SeedMenuItem) (*SeedResult, error) {
	in := struct {
		Items []entity.SeedMenuItem `json:"items"`
	}{Items: items}
	var out SeedResult
	if err := c.do(ctx, http.MethodPost, "/admin/menu/seed", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItem sends a partial update; only the patch's non-nil fields
// go over the wire.
func (c *Client) UpdateMenuItem(ctx context.Context, id string, p entity.MenuItemPatch) error {
	return c.do(ctx, http.MethodPatch, "/admin/menu/"+id, nil, p, nil)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/menu/"+id, nil, nil, nil)
}

// Login opens an admin session. The session cookie lands in the jar; when
// the backend also returns a token (development fallback) it is kept and
// attached to subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, in, &out); err != nil {
		return err
	}
	if out.Token != "" {
		c.SetAuthToken(out.Token)
	}
	return nil
}

// Logout closes the admin session and drops the fallback token either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/admin/logout", nil, nil, nil)
	c.SetAuthToken("")
	return err
}
