package services

import (
	"context"
	"errors"
	"fmt"

	"tableside/api"
	"tableside/entity"
)

var ErrNoChanges = errors.New("no changes detected")

// MenuAdminService wraps the menu-management screen's mutations: bulk
// seeding with client-side validation and edit saves that send only the
// fields that actually changed.
type MenuAdminService struct {
	API *api.Client
}

func NewMenuAdminService(client *api.Client) *MenuAdminService {
	return &MenuAdminService{API: client}
}

// ValidateSeedItems rejects a batch when any row is missing its name,
// description or a positive price. An invalid batch is never submitted.
func ValidateSeedItems(items []entity.SeedMenuItem) error {
	if len(items) == 0 {
		return errors.New("at least one item is required")
	}
	for i, it := range items {
		if it.Name == "" || it.Description == "" || it.Price <= 0 {
			return fmt.Errorf("item %d: name, description and price > 0 are required", i+1)
		}
	}
	return nil
}

func (s *MenuAdminService) BulkUpload(ctx context.Context, items []entity.SeedMenuItem) (*api.SeedResult, error) {
	if err := ValidateSeedItems(items); err != nil {
		return nil, err
	}
	return s.API.SeedMenu(ctx, items)
}

// MenuItemForm is the edit dialog's working copy of an item.
type MenuItemForm struct {
	Name              string
	Description       string
	Price             float64
	Veg               bool
	Available         bool
	IsChefsSpecial    bool
	IsAllTimeFavorite bool
	Category          string
	ImageURL          string
}

// DiffMenuItem builds the PATCH payload from what differs between the
// fetched item and the form. An image URL is only sent when the form has
// one; category only when it changed.
func DiffMenuItem(current entity.MenuItem, form MenuItemForm) entity.MenuItemPatch {
	var p entity.MenuItemPatch
	if form.Name != current.Name {
		p.Name = &form.Name
	}
	if form.Description != current.Description {
		p.Description = &form.Description
	}
	if form.Price != current.Price {
		p.Price = &form.Price
	}
	if form.Veg != current.Veg {
		p.Veg = &form.Veg
	}
	if form.Available != current.Available {
		p.Available = &form.Available
	}
	if form.IsChefsSpecial != current.IsChefsSpecial {
		p.IsChefsSpecial = &form.IsChefsSpecial
	}
	if form.IsAllTimeFavorite != current.IsAllTimeFavorite {
		p.IsAllTimeFavorite = &form.IsAllTimeFavorite
	}
	currentCategory := ""
	if current.Category != nil {
		currentCategory = current.Category.Name
	}
	if form.Category != "" && form.Category != currentCategory {
		p.Category = &form.Category
	}
	if form.ImageURL != "" {
		p.ImageURL = &form.ImageURL
	}
	return p
}

// UpdateItem diffs and patches; a form identical to the fetched item is
// rejected before any request is made.
func (s *MenuAdminService) UpdateItem(ctx context.Context, current entity.MenuItem, form MenuItemForm) error {
	p := DiffMenuItem(current, form)
	if p.Empty() {
		return ErrNoChanges
	}
	return s.API.UpdateMenuItem(ctx, current.ID, p)
}
