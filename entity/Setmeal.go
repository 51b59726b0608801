package entity

import (
	"gorm.io/gorm"
)

// SaleStatus applies to dishes and setmeals alike.
type SaleStatus int

const (
	SaleDisabled SaleStatus = iota
	SaleEnabled
)

// Setmeal is the combo aggregate root; its dish links are owned exclusively
// and always replaced as a whole batch.
type Setmeal struct {
	gorm.Model
	Name        string     `json:"name"`
	CategoryID  uint       `json:"categoryId"`
	Price       int64      `json:"price"`
	Status      SaleStatus `json:"status"`
	Description string     `json:"description"`
	Image       string     `json:"image"`

	SetmealDishes []SetmealDish `json:"-"`
}
