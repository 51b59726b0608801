package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/pkg/payment"
	"github.com/LXHNeko/space-takeout/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{}, &entity.AddressBook{}, &entity.Dish{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.CartItem{}, &entity.Order{}, &entity.OrderDetail{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeGateway records calls and can be told to fail refunds.
type fakeGateway struct {
	mu          sync.Mutex
	prepays     int
	refunds     int
	refundErr   error
	alreadyPaid bool
}

func (g *fakeGateway) CreatePrepay(orderNumber string, amount int64, description, payerID string) (*payment.Prepay, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.alreadyPaid {
		return nil, payment.ErrAlreadyPaid
	}
	g.prepays++
	return &payment.Prepay{PrepayID: "fake-" + orderNumber}, nil
}

func (g *fakeGateway) Refund(orderNumber, refundNumber string, amount, refundAmount int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refundErr != nil {
		return g.refundErr
	}
	g.refunds++
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *fakeNotifier) NotifyNewOrder(orderID uint, number string) {
	n.mu.Lock()
	n.calls++
	n.mu.Unlock()
}

func newOrderService(db *gorm.DB, gw payment.Gateway, notifier OrderNotifier) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewAddressRepository(db),
		gw,
		notifier,
	)
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) *entity.AddressBook {
	t.Helper()
	addr := entity.AddressBook{
		UserID: userID, Consignee: "Li Lei", Phone: "13800000000",
		ProvinceName: "Province", CityName: "City", DistrictName: "District", Detail: "No. 1",
	}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return &addr
}

func seedCartItem(t *testing.T, db *gorm.DB, userID uint, name string, price int64, qty int) *entity.CartItem {
	t.Helper()
	dishID := uint(7)
	item := entity.CartItem{
		UserID: userID, DishID: &dishID, Name: name, Price: price, Number: qty, Flavor: "mild",
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}
	return &item
}
