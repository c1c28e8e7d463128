package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "catalog:service:"

func serviceKey(id uint) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}

// CachedReader is a read-through Redis cache in front of another Reader.
// Services are immutable once created, so entries only ever expire by TTL.
// Cache failures fall back to the underlying reader; they never fail a
// lookup. Misses for unknown services are not cached.
type CachedReader struct {
	next   Reader
	client *redis.Client
	ttl    time.Duration
}

// NewReader builds the catalog reader stack. A nil Redis client degrades to
// the plain database reader.
func NewReader(next Reader, client *redis.Client, ttl time.Duration) Reader {
	if client == nil {
		return next
	}
	return &CachedReader{next: next, client: client, ttl: ttl}
}

func (c *CachedReader) Lookup(
	ctx context.Context,
	serviceID uint,
) (*ServiceInfo, error) {

	key := serviceKey(serviceID)

	if val, err := c.client.Get(ctx, key).Result(); err == nil {
		var info ServiceInfo
		if err := json.Unmarshal([]byte(val), &info); err == nil {
			return &info, nil
		}
	}

	info, err := c.next.Lookup(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(info); err == nil {
		c.client.Set(ctx, key, data, c.ttl)
	}

	return info, nil
}

var _ Reader = (*CachedReader)(nil)
