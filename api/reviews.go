package api

import (
	"context"
	"net/http"
	"net/url"

	"tableside/entity"
)

func (c *Client) SubmitReview(ctx context.Context, in entity.ReviewIn) error {
	return c.do(ctx, http.MethodPost, "/reviews", nil, in, nil)
}

func (c *Client) Reviews(ctx context.Context) (*entity.ReviewList, error) {
	var out entity.ReviewList
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReviewFilter narrows the reviews listing; empty fields are not sent.
// RatingType names the rating column to filter on (staffRating,
// ambienceRating or overallRating).
type ReviewFilter struct {
	RatingType string
	Rating     string
	Day        string
	Month      string
}

func (c *Client) FilterReviews(ctx context.Context, f ReviewFilter) (*entity.ReviewList, error) {
	q := url.Values{}
	if f.RatingType != "" {
		q.Set("ratingType", f.RatingType)
	}
	if f.Rating != "" {
		q.Set("rating", f.Rating)
	}
	if f.Day != "" {
		q.Set("day", f.Day)
	}
	if f.Month != "" {
		q.Set("month", f.Month)
	}
	var out entity.ReviewList
	if err := c.do(ctx, http.MethodGet, "/reviews/filter", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
