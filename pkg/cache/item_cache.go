package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultItemCacheTTL is used when NewItemCache is given a non-positive TTL.
	DefaultItemCacheTTL = 5 * time.Minute

	itemCacheKeyPrefix = "item"
)

// CachedItem is the read model stored in Redis as a hash.
type CachedItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemCache provides structured read/write operations for item cache entries.
// The store behind it lives in process memory, so keys are scoped by a
// per-process instance id to keep two servers sharing one Redis apart.
// Key format: "item:{instance}:{itemID}"
type ItemCache struct {
	client   *RedisClient
	instance uuid.UUID
	ttl      time.Duration
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = DefaultItemCacheTTL
	}
	return &ItemCache{client: r, instance: uuid.New(), ttl: ttl}
}

// Instance returns the key scope of this cache.
func (c *ItemCache) Instance() uuid.UUID {
	return c.instance
}

// Get retrieves a cached item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}

	return &CachedItem{
		ID:          id,
		Name:        vals["name"],
		Description: vals["description"],
	}, nil
}

// Set writes a cached item as a Redis hash and refreshes its TTL.
// Uses a pipeline to set all fields and the TTL in one round trip.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(item.ID, 10),
		"name", item.Name,
		"description", item.Description,
	)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Deleting a missing key is not an error.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%s:%d", itemCacheKeyPrefix, c.instance, itemID)
}
