package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/egypay/fawaterak_backend/models"
)

const methodCacheKey = "fawaterak:payment_methods"

// MethodCache is a short-lived Redis cache for the gateway's payment-method
// list. The gateway owns the data, so the cache is never authoritative: every
// miss or decode problem falls through to a fresh fetch. A nil *MethodCache
// is valid and disables caching.
type MethodCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMethodCache wraps a Redis client in a method cache. Returns nil when the
// client is nil so that a missing Redis simply turns caching off.
func NewMethodCache(client *redis.Client, ttl time.Duration) *MethodCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MethodCache{client: client, ttl: ttl}
}

// Get returns the cached method list, or ok=false on a miss
func (c *MethodCache) Get(ctx context.Context) ([]models.PaymentMethod, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, methodCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var methods []models.PaymentMethod
	if err := json.Unmarshal(data, &methods); err != nil {
		c.Invalidate(ctx)
		return nil, false
	}
	return methods, true
}

// Set stores the method list for the configured TTL
func (c *MethodCache) Set(ctx context.Context, methods []models.PaymentMethod) {
	if c == nil {
		return
	}

	data, err := json.Marshal(methods)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, methodCacheKey, data, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache payment methods: %v", err)
	}
}

// Invalidate drops the cached method list
func (c *MethodCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, methodCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate payment method cache: %v", err)
	}
}
