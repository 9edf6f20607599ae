package branding

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/propforma/propforma/internal/domain"
)

// RedisStore serves branding profiles from Redis, where the branding service
// publishes one JSON document per user under "branding:<userID>".
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a branding lookup to the given Redis address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func brandingKey(userID string) string {
	return "branding:" + userID
}

// Lookup fetches and decodes the user's profile. A missing key resolves to
// the default profile; transport and decode failures are returned so the
// caller can apply its soft-fail policy.
func (rs *RedisStore) Lookup(ctx context.Context, userID string) (domain.BrandingProfile, error) {
	val, err := rs.client.Get(ctx, brandingKey(userID)).Result()
	if err == redis.Nil {
		return domain.DefaultBranding(), nil
	}
	if err != nil {
		return domain.BrandingProfile{}, fmt.Errorf("branding lookup for %s: %w", userID, err)
	}
	var profile domain.BrandingProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return domain.BrandingProfile{}, fmt.Errorf("branding decode for %s: %w", userID, err)
	}
	return profile, nil
}

// Close releases the underlying Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
