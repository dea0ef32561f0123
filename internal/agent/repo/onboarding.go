package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
	logx "github.com/skillbridge/server/pkg/logger"
)

// RedisOnboardingStore persists in-flight onboarding progress. Records carry
// a TTL: an abandoned flow eventually restarts from welcome rather than
// resuming weeks later.
type RedisOnboardingStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisOnboardingStore(rdb redis.Cmdable, ttl time.Duration) *RedisOnboardingStore {
	return &RedisOnboardingStore{rdb: rdb, ttl: ttl}
}

func (s *RedisOnboardingStore) progressKey(userID string) string {
	return fmt.Sprintf("onboarding:%s:progress", userID)
}

func (s *RedisOnboardingStore) Get(ctx context.Context, userID string) (*model.OnboardingProgress, error) {
	raw, err := s.rdb.Get(ctx, s.progressKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			logx.Error().Err(err).Str("user_id", userID).Msg("failed to load onboarding progress from redis")
		}
		return nil, errx.WrapRedis(err)
	}

	var p model.OnboardingProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		logx.Error().Err(err).Str("user_id", userID).Msg("failed to unmarshal onboarding progress")
		return nil, fmt.Errorf("unmarshal onboarding progress: %w", err)
	}
	return &p, nil
}

func (s *RedisOnboardingStore) Put(ctx context.Context, progress *model.OnboardingProgress) error {
	b, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal onboarding progress: %w", err)
	}
	if err := s.rdb.Set(ctx, s.progressKey(progress.UserID), b, s.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("user_id", progress.UserID).Msg("failed to store onboarding progress in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisOnboardingStore) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, s.progressKey(userID)).Err(); err != nil {
		logx.Error().Err(err).Str("user_id", userID).Msg("failed to delete onboarding progress from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.OnboardingStore = (*RedisOnboardingStore)(nil)
