package repository

import (
	"time"

	"github.com/LXHNeko/space-takeout/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// partial update, same shape the payment-status updates use
func (r *OrderRepository) Update(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) CountByStatus(status entity.OrderStatus) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

// PageQuery filters the order history; zero values mean "no filter".
type PageQuery struct {
	Page   int
	Limit  int
	UserID uint
	Status *entity.OrderStatus
	Number string
	Phone  string
	Begin  *time.Time
	End    *time.Time
}

func (r *OrderRepository) Page(q PageQuery) ([]entity.Order, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 10
	}
	offset := (q.Page - 1) * q.Limit

	db := r.DB.Model(&entity.Order{})
	if q.UserID != 0 {
		db = db.Where("user_id = ?", q.UserID)
	}
	if q.Status != nil {
		db = db.Where("status = ?", *q.Status)
	}
	if q.Number != "" {
		db = db.Where("number LIKE ?", "%"+q.Number+"%")
	}
	if q.Phone != "" {
		db = db.Where("phone LIKE ?", "%"+q.Phone+"%")
	}
	if q.Begin != nil {
		db = db.Where("order_time >= ?", *q.Begin)
	}
	if q.End != nil {
		db = db.Where("order_time <= ?", *q.End)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Order
	if err := db.Order("order_time DESC").Limit(q.Limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ---------------- Order details ----------------

func (r *OrderRepository) CreateDetails(tx *gorm.DB, details []entity.OrderDetail) error {
	return tx.Create(&details).Error
}

func (r *OrderRepository) GetDetails(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}
