package repository

import (
	"errors"

	"github.com/LXHNeko/space-takeout/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListByUser reads through the given handle so submit can see the cart
// inside its own transaction.
func (r *CartRepository) ListByUser(db *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

// Upsert merges into an existing line (same product + flavor) or creates one.
func (r *CartRepository) Upsert(tx *gorm.DB, row *entity.CartItem) error {
	db := tx.Where("user_id = ? AND flavor = ?", row.UserID, row.Flavor)
	if row.DishID != nil {
		db = db.Where("dish_id = ?", *row.DishID)
	} else {
		db = db.Where("setmeal_id = ?", *row.SetmealID)
	}

	var exist entity.CartItem
	err := db.First(&exist).Error
	if err == nil {
		exist.Number += row.Number
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(row).Error
}

func (r *CartRepository) InsertBatch(tx *gorm.DB, items []entity.CartItem) error {
	return tx.Create(&items).Error
}

func (r *CartRepository) DeleteByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
