package services

import (
	"errors"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/repository"

	"gorm.io/gorm"
)

type SetmealService struct {
	DB   *gorm.DB
	Repo *repository.SetmealRepository
}

func NewSetmealService(db *gorm.DB, repo *repository.SetmealRepository) *SetmealService {
	return &SetmealService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type SetmealDishIn struct {
	DishID uint   `json:"dishId" binding:"required"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Copies int    `json:"copies" binding:"min=1"`
}

type SetmealReq struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name" binding:"required"`
	CategoryID  uint              `json:"categoryId"`
	Price       int64             `json:"price"`
	Status      entity.SaleStatus `json:"status"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Dishes      []SetmealDishIn   `json:"dishes"`
}

type SetmealVO struct {
	entity.Setmeal
	Dishes []entity.SetmealDish `json:"dishes"`
}

type SetmealPageRes struct {
	Total int64            `json:"total"`
	Items []entity.Setmeal `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// ----- Operations -----

// Create writes the header first so the storage-assigned ID exists before
// any dish link references it. A setmeal with no dishes yet is legal.
func (s *SetmealService) Create(req *SetmealReq) (uint, error) {
	setmeal := headerFromReq(req)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Insert(tx, &setmeal); err != nil {
			return err
		}
		if len(req.Dishes) == 0 {
			return nil
		}
		return s.Repo.InsertDishes(tx, dishLinks(req.Dishes, setmeal.ID))
	})
	if err != nil {
		return 0, err
	}
	return setmeal.ID, nil
}

// Update replaces, never merges: the stored dish set becomes exactly the
// submitted one.
func (s *SetmealService) Update(req *SetmealReq) error {
	setmeal := headerFromReq(req)
	setmeal.ID = req.ID

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &setmeal); err != nil {
			return err
		}
		if err := s.Repo.DeleteDishesBySetmealID(tx, setmeal.ID); err != nil {
			return err
		}
		if len(req.Dishes) == 0 {
			return nil
		}
		return s.Repo.InsertDishes(tx, dishLinks(req.Dishes, setmeal.ID))
	})
}

// DeleteByIDs checks every target before touching anything: one on-sale
// setmeal blocks the whole batch.
func (s *SetmealService) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return ErrEmptyIDList
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		targets, err := s.Repo.ListByIDs(tx, ids)
		if err != nil {
			return err
		}
		for _, t := range targets {
			if t.Status == entity.SaleEnabled {
				return ErrSetmealOnSale
			}
		}

		if err := s.Repo.DeleteByIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteDishesBySetmealIDs(tx, ids)
	})
}

func (s *SetmealService) GetByID(id uint) (*SetmealVO, error) {
	setmeal, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSetmealNotFound
		}
		return nil, err
	}
	dishes, err := s.Repo.GetDishes(setmeal.ID)
	if err != nil {
		return nil, err
	}
	return &SetmealVO{Setmeal: *setmeal, Dishes: dishes}, nil
}

func (s *SetmealService) Page(page, limit int, name string, status *entity.SaleStatus) (*SetmealPageRes, error) {
	rows, total, err := s.Repo.Page(page, limit, name, status)
	if err != nil {
		return nil, err
	}
	return &SetmealPageRes{Total: total, Items: rows, Page: page, Limit: limit}, nil
}

// ----- helpers -----

func headerFromReq(req *SetmealReq) entity.Setmeal {
	return entity.Setmeal{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Status:      req.Status,
		Description: req.Description,
		Image:       req.Image,
	}
}

func dishLinks(in []SetmealDishIn, setmealID uint) []entity.SetmealDish {
	out := make([]entity.SetmealDish, 0, len(in))
	for _, d := range in {
		out = append(out, entity.SetmealDish{
			SetmealID: setmealID,
			DishID:    d.DishID,
			Name:      d.Name,
			Price:     d.Price,
			Copies:    d.Copies,
		})
	}
	return out
}
