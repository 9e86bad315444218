package api

import (
	"context"
	"net/http"
	"net/url"

	"tableside/entity"
)

// DateRange bounds an analytics query; dates are "YYYY-MM-DD". Empty
// fields are not sent and the backend falls back to its own default window.
type DateRange struct {
	StartDate string
	EndDate   string
}

func (r DateRange) query() url.Values {
	q := url.Values{}
	if r.StartDate != "" {
		q.Set("startDate", r.StartDate)
	}
	if r.EndDate != "" {
		q.Set("endDate", r.EndDate)
	}
	return q
}

func (c *Client) AnalyticsSummary(ctx context.Context, r DateRange) (*entity.AnalyticsSummary, error) {
	var out entity.AnalyticsSummary
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/summary", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrdersDaily(ctx context.Context, r DateRange) ([]entity.DailyOrdersPoint, error) {
	var out []entity.DailyOrdersPoint
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/orders/daily", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrdersHourly breaks one date's orders down by hour of day.
func (c *Client) OrdersHourly(ctx context.Context, date string) ([]entity.HourlyOrdersPoint, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var out []entity.HourlyOrdersPoint
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/orders/hourly", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VegVsNonVeg(ctx context.Context, r DateRange) (*entity.VegSplit, error) {
	var out entity.VegSplit
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/veg-vs-nonveg", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopItems(ctx context.Context, r DateRange) ([]entity.TopItem, error) {
	var out []entity.TopItem
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/items/top", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesByCategory(ctx context.Context, r DateRange) ([]entity.CategorySales, error) {
	var out []entity.CategorySales
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/sales/category", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RepeatCustomers(ctx context.Context, r DateRange) ([]entity.RepeatCustomer, error) {
	var out []entity.RepeatCustomer
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/customers/repeat", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MostProfitableItem(ctx context.Context, r DateRange) (*entity.ProfitableItem, error) {
	var out entity.ProfitableItem
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/items/profitable", r.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
