package entity

import (
	"encoding/json"
	"testing"
)

func TestReviewListDecodesBareArray(t *testing.T) {
	var l ReviewList
	err := json.Unmarshal([]byte(`[{"_id":"r1","orderId":"ORD-1"},{"_id":"r2","orderId":"ORD-2"}]`), &l)
	if err != nil {
		t.Fatal(err)
	}
	if l.Count != 2 || len(l.Reviews) != 2 {
		t.Fatalf("count=%d len=%d, want 2/2", l.Count, len(l.Reviews))
	}
	if l.Reviews[0].ItemReviews == nil {
		t.Fatal("itemReviews must be normalized to a non-nil slice")
	}
}

func TestReviewListDecodesFilterResponse(t *testing.T) {
	var l ReviewList
	err := json.Unmarshal([]byte(`{"count":1,"filtersApplied":{"ratingType":"staffRating"},"reviews":[{"_id":"r1","orderId":"ORD-1"}]}`), &l)
	if err != nil {
		t.Fatal(err)
	}
	if l.Count != 1 {
		t.Fatalf("count = %d, want 1", l.Count)
	}
	if l.FiltersApplied["ratingType"] != "staffRating" {
		t.Fatalf("filtersApplied = %v", l.FiltersApplied)
	}
	if l.Reviews[0].ItemReviews == nil {
		t.Fatal("itemReviews must be normalized to a non-nil slice")
	}
}
