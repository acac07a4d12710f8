// Package statuscache caches each receiver's latest verification.
package statuscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"afternote/internal/review/models"
	id "afternote/pkg/domain"
)

const keyPrefix = "afternote:review_status:"

type RedisCache struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns nil without error on a miss.
func (c *RedisCache) Get(ctx context.Context, receiverID id.ReceiverID) (*models.Verification, error) {
	raw, err := c.client.Get(ctx, keyPrefix+receiverID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review status: %w", err)
	}
	var v models.Verification
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode review status: %w", err)
	}
	return &v, nil
}

func (c *RedisCache) Set(ctx context.Context, v *models.Verification, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode review status: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+v.ReceiverID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("set review status: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, receiverID id.ReceiverID) error {
	if err := c.client.Del(ctx, keyPrefix+receiverID.String()).Err(); err != nil {
		return fmt.Errorf("invalidate review status: %w", err)
	}
	return nil
}
