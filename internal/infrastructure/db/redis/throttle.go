package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LoginThrottle rate-limits login attempts per account using an INCR counter
// with a sliding TTL window. Key format: login_attempts:<email>
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    zerolog.Logger
}

// NewLoginThrottle creates a throttle allowing limit attempts per window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *LoginThrottle {
	return &LoginThrottle{client: client, limit: limit, window: window, log: log}
}

// Allow counts one attempt for email and reports whether it is still within
// the window limit. Redis failures are logged and fail open: a broken
// throttle backend must not lock every account out.
func (t *LoginThrottle) Allow(ctx context.Context, email string) bool {
	key := t.key(email)

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warn().Err(err).Msg("login throttle unavailable")
		return true
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			t.log.Warn().Err(err).Msg("login throttle expire failed")
		}
	}

	return count <= int64(t.limit)
}

func (t *LoginThrottle) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}
