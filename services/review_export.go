package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tableside/entity"
)

var reviewCSVHeader = []string{
	"Order ID",
	"Customer Name",
	"Customer Phone",
	"Item Reviews",
	"Staff Rating",
	"Ambience Rating",
	"Overall Rating",
	"Experience",
	"Suggestions",
	"Created At",
}

// WriteReviewsCSV writes the reviews table export. Item reviews are
// flattened to "name (rating) - comment" joined with " || "; unset
// ratings show as "-".
func WriteReviewsCSV(w io.Writer, reviews []entity.Review) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reviewCSVHeader); err != nil {
		return err
	}
	for _, r := range reviews {
		parts := make([]string, 0, len(r.ItemReviews))
		for _, it := range r.ItemReviews {
			rating := "-"
			if it.Rating > 0 {
				rating = strconv.Itoa(it.Rating)
			}
			parts = append(parts, fmt.Sprintf("%s (%s) - %s", it.Name, rating, it.Comment))
		}
		row := []string{
			r.OrderID,
			r.CustomerName,
			r.CustomerPhone,
			strings.Join(parts, " || "),
			strconv.Itoa(r.StaffRating),
			strconv.Itoa(r.AmbienceRating),
			strconv.Itoa(r.OverallRating),
			r.Experience,
			r.Suggestions,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
