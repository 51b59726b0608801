package configs

import (
	"log"

	"github.com/LXHNeko/space-takeout/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDishes loads a starter catalog so carts and setmeals have something
// to reference on a fresh database.
func SeedDishes() error {
	db := DB()

	dishes := []entity.Dish{
		{Name: "Kung Pao Chicken", Price: 3800, Status: entity.SaleEnabled},
		{Name: "Mapo Tofu", Price: 2600, Status: entity.SaleEnabled},
		{Name: "Fried Rice", Price: 2200, Status: entity.SaleEnabled},
		{Name: "Hot and Sour Soup", Price: 1800, Status: entity.SaleEnabled},
	}
	for _, d := range dishes {
		if err := db.Where(entity.Dish{Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}
