package services

import (
	"strings"

	"tableside/entity"
)

// Veg filter values for the menu screen.
const (
	VegAll  = "all"
	VegOnly = "veg"
	NonVeg  = "non-veg"
)

// Label filter values.
const (
	LabelAll             = "all"
	LabelChefSpecial     = "chef-special"
	LabelAllTimeFavorite = "all-time-favorite"
)

// MenuFilter mirrors the menu screen's filter bar. Zero values ("" or
// "all") disable the corresponding filter.
type MenuFilter struct {
	Query    string
	Veg      string
	Category string
	Label    string
}

// FilterMenu applies search, veg, category and label filters in that order.
func FilterMenu(items []entity.MenuItem, f MenuFilter) []entity.MenuItem {
	out := make([]entity.MenuItem, 0, len(items))
	query := strings.ToLower(f.Query)
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		if f.Veg == VegOnly && !item.Veg {
			continue
		}
		if f.Veg == NonVeg && item.Veg {
			continue
		}
		if f.Category != "" && f.Category != "all" && categoryName(item) != f.Category {
			continue
		}
		if f.Label == LabelChefSpecial && !item.IsChefsSpecial {
			continue
		}
		if f.Label == LabelAllTimeFavorite && !item.IsAllTimeFavorite {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories lists distinct category names in first-seen order. Items
// without a category are skipped.
func Categories(items []entity.MenuItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		name := categoryName(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// GroupByCategory buckets items by category name, with uncategorized items
// under "Other".
func GroupByCategory(items []entity.MenuItem) map[string][]entity.MenuItem {
	out := make(map[string][]entity.MenuItem)
	for _, item := range items {
		name := categoryName(item)
		if name == "" {
			name = "Other"
		}
		out[name] = append(out[name], item)
	}
	return out
}

func categoryName(item entity.MenuItem) string {
	if item.Category == nil {
		return ""
	}
	return item.Category.Name
}
