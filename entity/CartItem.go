package entity

import (
	"gorm.io/gorm"
)

// CartItem carries the same product snapshot fields as OrderDetail but is a
// separate entity: submit copies cart rows into details, reorder copies
// details back into fresh cart rows.
type CartItem struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DishID    *uint  `json:"dishId,omitempty"`
	SetmealID *uint  `json:"setmealId,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Number    int    `json:"number"`
	Flavor    string `json:"flavor"`
}
