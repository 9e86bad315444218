package api

import (
	"context"
	"net/http"

	"tableside/entity"
)

// Menu fetches the customer-facing menu.
func (c *Client) Menu(ctx context.Context) ([]entity.MenuItem, error) {
	var out struct {
		Items []entity.MenuItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/menu", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
