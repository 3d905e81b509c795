package otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Codes expire after five minutes; Redis TTL is the single source of truth.
const codeTTL = 5 * time.Minute

type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, key(email), code, codeTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to store OTP code", err)
	}
	return nil
}

// Verify consumes the code on success so it cannot be replayed.
func (s *RedisStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to read OTP code", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return false, infra.WrapRepoErr("failed to consume OTP code", err)
	}
	return true, nil
}

func key(email string) string {
	return "otp:" + email
}
