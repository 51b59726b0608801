package entity

import (
	"gorm.io/gorm"
)

// SetmealDish links a setmeal to one dish with a copy count and a
// name/price snapshot.
type SetmealDish struct {
	gorm.Model
	SetmealID uint    `json:"setmealId"`
	Setmeal   Setmeal `json:"-"`

	DishID uint   `json:"dishId"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Copies int    `json:"copies"`
}
