//go:build integration

package emailcode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"afternote/internal/receiverauth/models"
	"afternote/pkg/platform/sentinel"
	"afternote/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisStore
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
	s.store = NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisStoreSuite) TestSaveReplacesPendingCode() {
	expires := time.Now().UTC().Add(5 * time.Minute).Truncate(time.Second)
	s.Require().NoError(s.store.Save(s.ctx, &models.EmailCode{Email: "a@example.com", CodeHash: "h1", ExpiresAt: expires}, time.Minute))
	_, err := s.store.IncrementAttempts(s.ctx, "a@example.com")
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, &models.EmailCode{Email: "a@example.com", CodeHash: "h2", ExpiresAt: expires}, time.Minute))

	got, err := s.store.Find(s.ctx, "a@example.com")
	s.Require().NoError(err)
	s.Equal("h2", got.CodeHash)
	s.Equal(0, got.Attempts)
	s.True(expires.Equal(got.ExpiresAt))
}

func (s *RedisStoreSuite) TestIncrementAndDelete() {
	s.Require().NoError(s.store.Save(s.ctx, &models.EmailCode{Email: "b@example.com", CodeHash: "h", ExpiresAt: time.Now()}, time.Minute))
	n, err := s.store.IncrementAttempts(s.ctx, "b@example.com")
	s.Require().NoError(err)
	s.Equal(1, n)
	n, err = s.store.IncrementAttempts(s.ctx, "b@example.com")
	s.Require().NoError(err)
	s.Equal(2, n)

	s.Require().NoError(s.store.Delete(s.ctx, "b@example.com"))
	_, err = s.store.Find(s.ctx, "b@example.com")
	s.True(errors.Is(err, sentinel.ErrNotFound))
	_, err = s.store.IncrementAttempts(s.ctx, "b@example.com")
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *RedisStoreSuite) TestTTLExpiresCode() {
	s.Require().NoError(s.store.Save(s.ctx, &models.EmailCode{Email: "c@example.com", CodeHash: "h", ExpiresAt: time.Now()}, time.Second))
	s.Eventually(func() bool {
		_, err := s.store.Find(s.ctx, "c@example.com")
		return errors.Is(err, sentinel.ErrNotFound)
	}, 5*time.Second, 100*time.Millisecond)
}
