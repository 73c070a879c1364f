package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"push-server/internal/clients/redis"
	"push-server/internal/observability"

	"github.com/google/uuid"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service rate-limits the public subscribe/track endpoints. Uses a Redis
// sliding window keyed by caller identity; when Redis is disabled the check
// is a no-op (admission control is an optimization, not a correctness layer).
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
}

// NewService creates a new rate limiting service
func NewService(redisClient *redis.Client, limitPerMinute int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redisClient,
		limit:  limitPerMinute,
		logger: logger,
	}
}

// Check applies the sliding-window limit to one caller key.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	if !s.redis.IsEnabled() {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit}, nil
	}

	redisKey := fmt.Sprintf("rl:%s", key)
	now := time.Now()
	windowStart := now.Add(-1 * time.Minute)

	// Drop entries that fell out of the 1-minute window.
	err := s.redis.GetClient().ZRemRangeByScore(ctx, redisKey, "0",
		strconv.FormatInt(windowStart.UnixMilli(), 10)).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := s.redis.GetClient().ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := s.redis.GetClient().ZRange(ctx, redisKey, 0, 0).Result()
		resetAt := now.Add(time.Minute)
		if err == nil && len(oldest) > 0 {
			if oldestTs, parseErr := strconv.ParseInt(oldest[0], 10, 64); parseErr == nil {
				resetAt = time.UnixMilli(oldestTs).Add(time.Minute)
			}
		}
		retryAfter := time.Until(resetAt)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Record this request. Member carries a uuid suffix so two requests in
	// the same millisecond both count.
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.New().String()[:8])
	err = s.redis.GetClient().ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: member,
	}).Err()
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}
	s.redis.GetClient().Expire(ctx, redisKey, 2*time.Minute)

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(time.Minute),
	}, nil
}
