package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PublicProductsKey returns the cache key for the public product listing.
func (r *CacheKeyStruct) PublicProductsKey() string {
	return "products:public"
}

// ProductKey returns the cache key for a single product payload.
func (r *CacheKeyStruct) ProductKey(productID int) string {
	return fmt.Sprintf("product:%d", productID)
}

var CacheKey = NewCacheKeyStruct()
