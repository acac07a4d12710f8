// Package capability caches authCode digest to capability lookups.
package capability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
)

const keyPrefix = "afternote:capability:"

type cachedCapability struct {
	ReceiverID id.ReceiverID `json:"receiverId"`
	OwnerID    id.OwnerID    `json:"ownerId"`
}

// RedisCache is keyed by master key digest; the plaintext key never reaches
// redis.
type RedisCache struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns nil without error on a miss.
func (c *RedisCache) Get(ctx context.Context, digest string) (*models.AccessCapability, error) {
	raw, err := c.client.Get(ctx, keyPrefix+digest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get capability: %w", err)
	}
	var cached cachedCapability
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("decode capability: %w", err)
	}
	return &models.AccessCapability{ReceiverID: cached.ReceiverID, OwnerID: cached.OwnerID}, nil
}

func (c *RedisCache) Set(ctx context.Context, digest string, capability models.AccessCapability, ttl time.Duration) error {
	raw, err := json.Marshal(cachedCapability{ReceiverID: capability.ReceiverID, OwnerID: capability.OwnerID})
	if err != nil {
		return fmt.Errorf("encode capability: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+digest, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set capability: %w", err)
	}
	return nil
}
