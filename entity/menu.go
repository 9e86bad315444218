package entity

type MenuCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID                string        `json:"_id"`
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Price             float64       `json:"price"`
	Veg               bool          `json:"veg"`
	Available         bool          `json:"available"`
	IsChefsSpecial    bool          `json:"isChefsSpecial"`
	IsAllTimeFavorite bool          `json:"isAllTimeFavorite"`
	Category          *MenuCategory `json:"categoryId,omitempty"`
	ImageURL          string        `json:"imageUrl,omitempty"`
}

// SeedMenuItem is one row of the admin bulk-upload form.
type SeedMenuItem struct {
	Name              string  `json:"name"`
	Veg               bool    `json:"veg"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	IsAllTimeFavorite bool    `json:"isAllTimeFavorite"`
	IsChefsSpecial    bool    `json:"isChefsSpecial"`
	ImageURL          string  `json:"imageUrl"`
}

// MenuItemPatch carries only the fields the admin actually changed; nil
// fields are omitted from the PATCH body.
type MenuItemPatch struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	Veg               *bool    `json:"veg,omitempty"`
	Available         *bool    `json:"available,omitempty"`
	IsChefsSpecial    *bool    `json:"isChefsSpecial,omitempty"`
	IsAllTimeFavorite *bool    `json:"isAllTimeFavorite,omitempty"`
	Category          *string  `json:"category,omitempty"`
	ImageURL          *string  `json:"imageUrl,omitempty"`
}

// Empty reports whether the patch carries no changes at all.
func (p MenuItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Veg == nil && p.Available == nil && p.IsChefsSpecial == nil &&
		p.IsAllTimeFavorite == nil && p.Category == nil && p.ImageURL == nil
}
