// Package cache holds the optional Redis read cache for product
// lookups. Every function tolerates a nil client so the API runs
// without Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aaban-saad/nextgen-circuits-api/models"
	"github.com/redis/go-redis/v9"
)

const productTTL = time.Minute

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// GetProduct returns the cached product or nil on miss (or nil client).
func GetProduct(ctx context.Context, rdb *redis.Client, id uint) *models.Product {
	if rdb == nil {
		return nil
	}
	raw, err := rdb.Get(ctx, productKey(id)).Result()
	if err != nil {
		return nil
	}
	var p models.Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

// SetProduct stores the product for a short TTL; errors are ignored, the
// cache is best-effort.
func SetProduct(ctx context.Context, rdb *redis.Client, p *models.Product) {
	if rdb == nil || p == nil {
		return
	}
	if data, err := json.Marshal(p); err == nil {
		rdb.Set(ctx, productKey(p.ID), data, productTTL)
	}
}

// InvalidateProduct drops the cached copy after a write.
func InvalidateProduct(ctx context.Context, rdb *redis.Client, id uint) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, productKey(id))
}
