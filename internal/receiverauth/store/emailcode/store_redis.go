package emailcode

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"afternote/internal/receiverauth/models"
	"afternote/pkg/platform/sentinel"
)

const keyPrefix = "afternote:email_code:"

// RedisStore keeps codes in a hash per email with a key TTL, so abandoned
// codes disappear on their own.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, code *models.EmailCode, ttl time.Duration) error {
	key := keyPrefix + code.Email
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key,
			"code_hash", code.CodeHash,
			"expires_at", code.ExpiresAt.UnixMilli(),
			"attempts", code.Attempts,
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save email code: %w", err)
	}
	return nil
}

func (s *RedisStore) Find(ctx context.Context, email string) (*models.EmailCode, error) {
	fields, err := s.client.HGetAll(ctx, keyPrefix+email).Result()
	if err != nil {
		return nil, fmt.Errorf("find email code: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("email code: %w", sentinel.ErrNotFound)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse email code expiry: %w", err)
	}
	attempts, err := strconv.Atoi(fields["attempts"])
	if err != nil {
		return nil, fmt.Errorf("parse email code attempts: %w", err)
	}
	return &models.EmailCode{
		Email:     email,
		CodeHash:  fields["code_hash"],
		ExpiresAt: time.UnixMilli(expiresAt).UTC(),
		Attempts:  attempts,
	}, nil
}

// IncrementAttempts uses HINCRBY so concurrent guesses are all counted.
func (s *RedisStore) IncrementAttempts(ctx context.Context, email string) (int, error) {
	key := keyPrefix + email
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment email code attempts: %w", err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("email code: %w", sentinel.ErrNotFound)
	}
	n, err := s.client.HIncrBy(ctx, key, "attempts", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("increment email code attempts: %w", err)
	}
	return int(n), nil
}

func (s *RedisStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		return fmt.Errorf("delete email code: %w", err)
	}
	return nil
}
