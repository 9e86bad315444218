package services

import (
	"testing"

	"tableside/entity"
)

func TestNewReviewFormSeedsItemRows(t *testing.T) {
	order := &entity.Order{
		OrderID: "ORD-1",
		Items: []entity.OrderItem{
			{MenuItemID: "m1", Name: "Dosa"},
			{MenuItemID: "m2", Name: "Chai"},
		},
	}
	f := NewReviewForm(order)

	if f.OrderID != "ORD-1" {
		t.Fatalf("order id = %q", f.OrderID)
	}
	if len(f.Items) != 2 || f.Items[1].Name != "Chai" || f.Items[1].Rating != 0 {
		t.Fatalf("unexpected item rows: %+v", f.Items)
	}
}

func TestRateItemBounds(t *testing.T) {
	f := NewReviewForm(&entity.Order{Items: []entity.OrderItem{{MenuItemID: "m1", Name: "Dosa"}}})

	f.RateItem(0, 4, "good")
	if f.Items[0].Rating != 4 || f.Items[0].Comment != "good" {
		t.Fatalf("rating not applied: %+v", f.Items[0])
	}

	f.RateItem(-1, 5, "x")
	f.RateItem(1, 5, "x")
	if f.Items[0].Rating != 4 {
		t.Fatal("out-of-range index must be ignored")
	}
}

func TestReviewFormValidate(t *testing.T) {
	f := &ReviewForm{}
	if err := f.Validate(); err != ErrNoOverallRating {
		t.Fatalf("err = %v, want ErrNoOverallRating", err)
	}

	f.OverallRating = 5
	if err := f.Validate(); err != nil {
		t.Fatalf("overall-only form should be valid: %v", err)
	}

	f.StaffRating = 6
	if err := f.Validate(); err == nil {
		t.Fatal("staff rating above 5 must be rejected")
	}
	f.StaffRating = 0

	f.Items = []entity.ItemReview{{Name: "Dosa", Rating: 7}}
	if err := f.Validate(); err == nil {
		t.Fatal("item rating above 5 must be rejected")
	}
}
