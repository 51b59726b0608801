package repository

import (
	"github.com/LXHNeko/space-takeout/entity"

	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

// Get reads through the given handle; order submission calls it from
// inside its transaction.
func (r *AddressRepository) Get(db *gorm.DB, id uint) (*entity.AddressBook, error) {
	var a entity.AddressBook
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListByUser(userID uint) ([]entity.AddressBook, error) {
	var rows []entity.AddressBook
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *AddressRepository) Create(a *entity.AddressBook) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Update(a *entity.AddressBook) error {
	return r.DB.Save(a).Error
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.AddressBook{}).Error
}
