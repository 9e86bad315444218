package entity

import (
	"gorm.io/gorm"
)

// Cart is the persisted shape of one table's in-progress order. Each table
// identifier owns exactly one cart row.
type Cart struct {
	gorm.Model
	TableNumber string `json:"tableNumber" gorm:"uniqueIndex"`

	Items []CartLine `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// CartLine is one menu item in a cart. MenuItemID is unique within a cart;
// adding the same item again bumps Qty instead of inserting a second line.
type CartLine struct {
	gorm.Model
	CartID uint `json:"-" gorm:"index"`

	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
	Notes      string  `json:"notes,omitempty"`
	Veg        bool    `json:"veg"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}
