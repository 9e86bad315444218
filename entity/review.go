package entity

import (
	"encoding/json"
	"time"
)

type ItemReview struct {
	MenuItemID string `json:"menuItemId,omitempty"`
	Name       string `json:"name,omitempty"`
	Rating     int    `json:"rating,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type Review struct {
	ID             string       `json:"_id"`
	OrderID        string       `json:"orderId"`
	CustomerName   string       `json:"customerName,omitempty"`
	CustomerPhone  string       `json:"customerPhone,omitempty"`
	ItemReviews    []ItemReview `json:"itemReviews"`
	StaffRating    int          `json:"staffRating,omitempty"`
	AmbienceRating int          `json:"ambienceRating,omitempty"`
	OverallRating  int          `json:"overallRating,omitempty"`
	Experience     string       `json:"experience,omitempty"`
	Suggestions    string       `json:"suggestions,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ReviewIn is the POST /reviews body.
type ReviewIn struct {
	OrderID        string       `json:"orderId"`
	ItemReviews    []ItemReview `json:"itemReviews"`
	StaffRating    int          `json:"staffRating"`
	AmbienceRating int          `json:"ambienceRating"`
	OverallRating  int          `json:"overallRating"`
	Experience     string       `json:"experience"`
	Suggestions    string       `json:"suggestions"`
}

// ReviewList is the reviews listing response. The backend answers with
// either a bare array or a {count, filtersApplied, reviews} object; both
// decode into this one shape, and ItemReviews is never left nil.
type ReviewList struct {
	Count          int               `json:"count"`
	FiltersApplied map[string]string `json:"filtersApplied,omitempty"`
	Reviews        []Review          `json:"reviews"`
}

func (l *ReviewList) UnmarshalJSON(b []byte) error {
	var plain []Review
	if err := json.Unmarshal(b, &plain); err == nil {
		l.Count = len(plain)
		l.FiltersApplied = nil
		l.Reviews = plain
		l.normalize()
		return nil
	}

	type alias ReviewList
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*l = ReviewList(a)
	l.normalize()
	return nil
}

func (l *ReviewList) normalize() {
	if l.Reviews == nil {
		l.Reviews = []Review{}
	}
	for i := range l.Reviews {
		if l.Reviews[i].ItemReviews == nil {
			l.Reviews[i].ItemReviews = []ItemReview{}
		}
	}
}
