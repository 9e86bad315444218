package configs

import (
	"tableside/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenCartDB opens the local sqlite file that keeps per-table carts alive
// across restarts and migrates the cart tables.
func OpenCartDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.Cart{}, &entity.CartLine{}); err != nil {
		return nil, err
	}
	return db, nil
}
