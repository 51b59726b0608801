package configs

import (
	"github.com/LXHNeko/space-takeout/entity"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB
var rdb *redis.Client

func DB() *gorm.DB {
	return db
}

func Redis() *redis.Client {
	return rdb
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func ConnectRedis(addr string) {
	rdb = redis.NewClient(&redis.Options{Addr: addr})
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.AddressBook{},
		&entity.Dish{},
		&entity.Setmeal{}, &entity.SetmealDish{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderDetail{},
	)
}
