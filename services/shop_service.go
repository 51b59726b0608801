package services

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const shopStatusKey = "SHOP_STATUS"

// ShopService keeps the single open/closed flag in redis. Nothing is
// cached locally; the flag store is the source of truth.
type ShopService struct {
	RDB *redis.Client
}

func NewShopService(rdb *redis.Client) *ShopService {
	return &ShopService{RDB: rdb}
}

// GetStatus reports 1 when the shop is open. A missing key reads as closed.
func (s *ShopService) GetStatus(ctx context.Context) (int, error) {
	status, err := s.RDB.Get(ctx, shopStatusKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return status, err
}

func (s *ShopService) SetStatus(ctx context.Context, status int) error {
	return s.RDB.Set(ctx, shopStatusKey, status, 0).Err()
}
