package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"pawmart/internal/domain/pet"
)

// Cache key patterns:
// - pet:{pet_id} - 5m TTL, listing cache for catalog reads
//
// Fulfillment writers invalidate pet keys after every committed status
// change so the cache never serves a stale terminal state for long.

// CacheConfig contains configuration for caching
type CacheConfig struct {
	PetTTL time.Duration // TTL for pet listing cache (default 5m)
}

// DefaultCacheConfig returns sensible defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		PetTTL: 5 * time.Minute,
	}
}

// CacheStore handles caching in Redis
type CacheStore struct {
	client *goredis.Client
	config CacheConfig
}

// NewCacheStore creates a new cache store
func NewCacheStore(client *goredis.Client, config CacheConfig) *CacheStore {
	return &CacheStore{
		client: client,
		config: config,
	}
}

// GetPet retrieves a pet from cache. A nil result with nil error is a miss.
func (c *CacheStore) GetPet(ctx context.Context, petID uuid.UUID) (*pet.Pet, error) {
	key := petKey(petID)
	data, err := c.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var p pet.Pet
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPet stores a pet in cache
func (c *CacheStore) SetPet(ctx context.Context, p pet.Pet) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, petKey(p.ID), data, c.config.PetTTL).Err()
}

// InvalidatePet drops a pet from cache after a status transition commits.
func (c *CacheStore) InvalidatePet(ctx context.Context, petID uuid.UUID) error {
	return c.client.Del(ctx, petKey(petID)).Err()
}

// InvalidatePets drops several pets at once (order reservation/release paths).
func (c *CacheStore) InvalidatePets(ctx context.Context, petIDs []uuid.UUID) error {
	if len(petIDs) == 0 {
		return nil
	}
	keys := make([]string, len(petIDs))
	for i, id := range petIDs {
		keys[i] = petKey(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func petKey(id uuid.UUID) string {
	return fmt.Sprintf("pet:%s", id.String())
}
