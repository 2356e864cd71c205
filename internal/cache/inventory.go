package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%s"
	PostKeyPrefix = "post:%s"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

// UserKey builds the cache key for a user by public identifier.
func UserKey(uid string) string {
	return fmt.Sprintf(UserKeyPrefix, uid)
}

// PostKey builds the cache key for a post by public identifier.
func PostKey(publicID string) string {
	return fmt.Sprintf(PostKeyPrefix, publicID)
}

// Aside implements the cache-aside pattern: on hit, dest is populated from the
// cached JSON; on miss, load runs and its result (already written into dest by
// the caller's closure) is cached with the given TTL. Cache failures are never
// fatal; the loader result wins.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		raw, err := client.Get(ctx, key).Bytes()
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// Corrupt entry; drop it and fall through to the loader.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes a user's cache entry.
func InvalidateUser(ctx context.Context, uid string) {
	Invalidate(ctx, UserKey(uid))
}

// InvalidatePost removes a post's cache entry.
func InvalidatePost(ctx context.Context, publicID string) {
	Invalidate(ctx, PostKey(publicID))
}
