package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
	logx "github.com/skillbridge/server/pkg/logger"
)

// RedisProfileStore persists user profiles as JSON values. Profiles are
// durable: no TTL, never deleted by the engine.
type RedisProfileStore struct {
	rdb redis.Cmdable
}

func NewRedisProfileStore(rdb redis.Cmdable) *RedisProfileStore {
	return &RedisProfileStore{rdb: rdb}
}

func (s *RedisProfileStore) profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func (s *RedisProfileStore) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	raw, err := s.rdb.Get(ctx, s.profileKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			logx.Error().Err(err).Str("user_id", userID).Msg("failed to load profile from redis")
		}
		return nil, errx.WrapRedis(err)
	}

	var p model.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		logx.Error().Err(err).Str("user_id", userID).Msg("failed to unmarshal profile")
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

func (s *RedisProfileStore) Put(ctx context.Context, profile *model.UserProfile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.rdb.Set(ctx, s.profileKey(profile.UserID), b, 0).Err(); err != nil {
		logx.Error().Err(err).Str("user_id", profile.UserID).Msg("failed to store profile in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.ProfileStore = (*RedisProfileStore)(nil)
