package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rkenterprise/site-backend/internal/model"
	"github.com/rs/zerolog"
)

// ProductCache keeps the public product listing and single product payloads
// in Redis so catalog reads skip the database while the cache is warm.
// Every product mutation invalidates the affected keys. Cache failures are
// logged and treated as misses; Redis is never on the failure path of a
// request.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewProductCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *ProductCache {
	return &ProductCache{rdb: rdb, ttl: ttl, log: log}
}

// GetList returns the cached public listing, reporting whether it was warm.
func (c *ProductCache) GetList(ctx context.Context) ([]model.Product, bool) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.PublicProductsKey()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("Product list cache read failed")
		}
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("Product list cache payload corrupt")
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetList(ctx context.Context, products []model.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, config.CacheKey.PublicProductsKey(), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Product list cache write failed")
	}
}

// Get returns a cached product payload, reporting whether it was warm.
func (c *ProductCache) Get(ctx context.Context, id int) (*model.Product, bool) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.ProductKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Int("product_id", id).Msg("Product cache read failed")
		}
		return nil, false
	}
	var p model.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *model.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, config.CacheKey.ProductKey(p.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int("product_id", p.ID).Msg("Product cache write failed")
	}
}

// Invalidate drops the public listing plus the payloads of the given ids.
func (c *ProductCache) Invalidate(ctx context.Context, ids ...int) {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, config.CacheKey.PublicProductsKey())
	for _, id := range ids {
		keys = append(keys, config.CacheKey.ProductKey(id))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Product cache invalidation failed")
	}
}
