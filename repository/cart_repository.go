package repository

import (
	"errors"

	"tableside/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Load returns the persisted cart for a table, or a fresh empty cart the
// first time the table identifier is seen.
func (r *CartRepository) Load(tableNumber string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_lines.id ASC") }).
		Where("table_number = ?", tableNumber).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{TableNumber: tableNumber}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save replaces the stored cart for c.TableNumber with c's lines. A save
// with no lines clears the table's cart.
func (r *CartRepository) Save(c *entity.Cart) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var row entity.Cart
		err := tx.Where("table_number = ?", c.TableNumber).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = entity.Cart{TableNumber: c.TableNumber}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Unscoped().Where("cart_id = ?", row.ID).Delete(&entity.CartLine{}).Error; err != nil {
			return err
		}
		if len(c.Items) == 0 {
			return nil
		}

		lines := make([]entity.CartLine, len(c.Items))
		copy(lines, c.Items)
		for i := range lines {
			lines[i].Model = gorm.Model{}
			lines[i].CartID = row.ID
		}
		return tx.Create(&lines).Error
	})
}
