package services

import (
	"errors"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	Repo        *repository.CartRepository
	DishRepo    *repository.DishRepository
	SetmealRepo *repository.SetmealRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, dishRepo *repository.DishRepository, setmealRepo *repository.SetmealRepository) *CartService {
	return &CartService{DB: db, Repo: repo, DishRepo: dishRepo, SetmealRepo: setmealRepo}
}

type AddToCartIn struct {
	DishID    uint   `json:"dishId"`
	SetmealID uint   `json:"setmealId"`
	Flavor    string `json:"flavor"`
}

// Add snapshots name/image/price from the catalog at this instant; the
// cart row never re-reads the product later.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	row := entity.CartItem{UserID: userID, Number: 1, Flavor: in.Flavor}

	switch {
	case in.DishID != 0:
		dish, err := s.DishRepo.Get(in.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDishNotFound
			}
			return err
		}
		id := dish.ID
		row.DishID = &id
		row.Name = dish.Name
		row.Image = dish.Image
		row.Price = dish.Price

	case in.SetmealID != 0:
		setmeal, err := s.SetmealRepo.Get(in.SetmealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSetmealNotFound
			}
			return err
		}
		id := setmeal.ID
		row.SetmealID = &id
		row.Name = setmeal.Name
		row.Image = setmeal.Image
		row.Price = setmeal.Price

	default:
		return ErrDishNotFound
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Upsert(tx, &row)
	})
}

func (s *CartService) List(userID uint) ([]entity.CartItem, int64, error) {
	items, err := s.Repo.ListByUser(s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	var amount int64
	for _, it := range items {
		amount += it.Price * int64(it.Number)
	}
	return items, amount, nil
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteByUser(tx, userID)
	})
}
