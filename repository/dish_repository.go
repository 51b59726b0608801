package repository

import (
	"github.com/LXHNeko/space-takeout/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) Get(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) List() ([]entity.Dish, error) {
	var rows []entity.Dish
	err := r.DB.Where("status = ?", entity.SaleEnabled).Order("id").Find(&rows).Error
	return rows, err
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}
