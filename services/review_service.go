package services

import (
	"context"
	"errors"
	"fmt"

	"tableside/api"
	"tableside/entity"
)

var ErrNoOverallRating = errors.New("overall rating is required")

// ReviewForm is the review screen's working state, seeded from the order
// being reviewed.
type ReviewForm struct {
	OrderID        string
	Items          []entity.ItemReview
	StaffRating    int
	AmbienceRating int
	OverallRating  int
	Experience     string
	Suggestions    string
}

// NewReviewForm seeds one unrated item-review row per order item.
func NewReviewForm(order *entity.Order) *ReviewForm {
	f := &ReviewForm{OrderID: order.OrderID}
	for _, it := range order.Items {
		f.Items = append(f.Items, entity.ItemReview{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
		})
	}
	return f
}

// RateItem sets one item row's rating and comment; out-of-range indexes
// are ignored.
func (f *ReviewForm) RateItem(i, rating int, comment string) {
	if i < 0 || i >= len(f.Items) {
		return
	}
	f.Items[i].Rating = rating
	f.Items[i].Comment = comment
}

// Validate checks the form before it goes over the wire. Only the overall
// rating is mandatory, every given rating must be 1-5.
func (f *ReviewForm) Validate() error {
	if f.OverallRating == 0 {
		return ErrNoOverallRating
	}
	for name, r := range map[string]int{
		"overall":  f.OverallRating,
		"staff":    f.StaffRating,
		"ambience": f.AmbienceRating,
	} {
		if r < 0 || r > 5 {
			return fmt.Errorf("%s rating out of range: %d", name, r)
		}
	}
	for _, it := range f.Items {
		if it.Rating < 0 || it.Rating > 5 {
			return fmt.Errorf("rating out of range for %q: %d", it.Name, it.Rating)
		}
	}
	return nil
}

type ReviewService struct {
	API *api.Client
}

func NewReviewService(client *api.Client) *ReviewService { return &ReviewService{API: client} }

// Submit validates locally and posts the review; an invalid form never
// reaches the backend.
func (s *ReviewService) Submit(ctx context.Context, f *ReviewForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.API.SubmitReview(ctx, entity.ReviewIn{
		OrderID:        f.OrderID,
		ItemReviews:    f.Items,
		StaffRating:    f.StaffRating,
		AmbienceRating: f.AmbienceRating,
		OverallRating:  f.OverallRating,
		Experience:     f.Experience,
		Suggestions:    f.Suggestions,
	})
}
