package repo

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skillbridge/server/internal/agent/model"
	errx "github.com/skillbridge/server/internal/core/error"
	logx "github.com/skillbridge/server/pkg/logger"
)

// RedisAssessmentChecker reads the completion marks the assessment service
// writes into a per-user set of subjects.
type RedisAssessmentChecker struct {
	rdb redis.Cmdable
}

func NewRedisAssessmentChecker(rdb redis.Cmdable) *RedisAssessmentChecker {
	return &RedisAssessmentChecker{rdb: rdb}
}

func (c *RedisAssessmentChecker) assessmentKey(userID string) string {
	return fmt.Sprintf("assessment:%s:completed", userID)
}

func (c *RedisAssessmentChecker) HasCompletedAssessment(ctx context.Context, userID string, subject model.Subject) (bool, error) {
	done, err := c.rdb.SIsMember(ctx, c.assessmentKey(userID), string(subject)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		logx.Error().Err(err).Str("user_id", userID).Msg("failed to check assessment completion")
		return false, errx.WrapRedis(err)
	}
	return done, nil
}

// MarkCompleted records a finished assessment. Exposed for operational
// tooling and test seeding.
func (c *RedisAssessmentChecker) MarkCompleted(ctx context.Context, userID string, subject model.Subject) error {
	if err := c.rdb.SAdd(ctx, c.assessmentKey(userID), string(subject)).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.AssessmentChecker = (*RedisAssessmentChecker)(nil)
