package repository

import (
	"github.com/LXHNeko/space-takeout/entity"

	"gorm.io/gorm"
)

type SetmealRepository struct{ DB *gorm.DB }

func NewSetmealRepository(db *gorm.DB) *SetmealRepository { return &SetmealRepository{DB: db} }

// ---------------- Setmeal header ----------------

// Insert populates the storage-assigned ID on the passed entity.
func (r *SetmealRepository) Insert(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Create(s).Error
}

func (r *SetmealRepository) Update(tx *gorm.DB, s *entity.Setmeal) error {
	return tx.Model(&entity.Setmeal{}).Where("id = ?", s.ID).Updates(map[string]any{
		"name":        s.Name,
		"category_id": s.CategoryID,
		"price":       s.Price,
		"status":      s.Status,
		"description": s.Description,
		"image":       s.Image,
	}).Error
}

func (r *SetmealRepository) Get(id uint) (*entity.Setmeal, error) {
	var s entity.Setmeal
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByIDs reads through the given handle so the batch delete can check
// sale status inside its own transaction.
func (r *SetmealRepository) ListByIDs(db *gorm.DB, ids []uint) ([]entity.Setmeal, error) {
	var rows []entity.Setmeal
	err := db.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *SetmealRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	return tx.Where("id IN ?", ids).Delete(&entity.Setmeal{}).Error
}

func (r *SetmealRepository) Page(page, limit int, name string, status *entity.SaleStatus) ([]entity.Setmeal, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := r.DB.Model(&entity.Setmeal{})
	if name != "" {
		db = db.Where("name LIKE ?", "%"+name+"%")
	}
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []entity.Setmeal
	if err := db.Order("id DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ---------------- Dish links ----------------

func (r *SetmealRepository) InsertDishes(tx *gorm.DB, dishes []entity.SetmealDish) error {
	return tx.Create(&dishes).Error
}

func (r *SetmealRepository) DeleteDishesBySetmealID(tx *gorm.DB, setmealID uint) error {
	return tx.Where("setmeal_id = ?", setmealID).Delete(&entity.SetmealDish{}).Error
}

func (r *SetmealRepository) DeleteDishesBySetmealIDs(tx *gorm.DB, setmealIDs []uint) error {
	return tx.Where("setmeal_id IN ?", setmealIDs).Delete(&entity.SetmealDish{}).Error
}

func (r *SetmealRepository) GetDishes(setmealID uint) ([]entity.SetmealDish, error) {
	var rows []entity.SetmealDish
	err := r.DB.Where("setmeal_id = ?", setmealID).Find(&rows).Error
	return rows, err
}
