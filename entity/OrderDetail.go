package entity

import (
	"gorm.io/gorm"
)

// OrderDetail is an immutable line item snapshot; rows are batch-created
// at submit and never touched again.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID    *uint  `json:"dishId,omitempty"`
	SetmealID *uint  `json:"setmealId,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Number    int    `json:"number"`
	Flavor    string `json:"flavor"`
}
