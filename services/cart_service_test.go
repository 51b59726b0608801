package services

import (
	"errors"
	"testing"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/repository"

	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		db,
		repository.NewCartRepository(db),
		repository.NewDishRepository(db),
		repository.NewSetmealRepository(db),
	)
}

func seedDish(t *testing.T, db *gorm.DB, name string, price int64) *entity.Dish {
	t.Helper()
	d := entity.Dish{Name: name, Price: price, Status: entity.SaleEnabled}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return &d
}

func TestAddSnapshotsDish(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	dish := seedDish(t, db, "Mapo Tofu", 2600)

	if err := svc.Add(1, &AddToCartIn{DishID: dish.ID, Flavor: "extra hot"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, amount, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || amount != 2600 {
		t.Fatalf("expected one line of 2600, got %d lines amount %d", len(items), amount)
	}
	if items[0].Name != "Mapo Tofu" || items[0].Flavor != "extra hot" {
		t.Errorf("snapshot wrong: %+v", items[0])
	}

	// price changes after the fact must not affect the snapshot
	db.Model(&entity.Dish{}).Where("id = ?", dish.ID).Update("price", 9999)
	items, _, _ = svc.List(1)
	if items[0].Price != 2600 {
		t.Errorf("cart price re-read from catalog: %d", items[0].Price)
	}
}

func TestAddMergesSameLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	dish := seedDish(t, db, "Fried Rice", 2200)

	for i := 0; i < 3; i++ {
		if err := svc.Add(1, &AddToCartIn{DishID: dish.ID}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	items, amount, _ := svc.List(1)
	if len(items) != 1 || items[0].Number != 3 || amount != 6600 {
		t.Errorf("expected one merged line qty=3, got %+v amount=%d", items, amount)
	}
}

func TestAddUnknownDish(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	if err := svc.Add(1, &AddToCartIn{DishID: 99}); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("expected ErrDishNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	dish := seedDish(t, db, "Soup", 1800)

	if err := svc.Add(1, &AddToCartIn{DishID: dish.ID}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, _, _ := svc.List(1)
	if len(items) != 0 {
		t.Errorf("cart should be empty, got %d", len(items))
	}
}
