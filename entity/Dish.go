package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string     `json:"name" gorm:"uniqueIndex"`
	Price       int64      `json:"price"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Status      SaleStatus `json:"status"`
}
