package quota

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

const acquireRetryInterval = 20 * time.Millisecond

// RedisLocker serializes quadrant admission across server instances with a
// SET NX lock per quadrant key. The TTL bounds how long a crashed holder can
// block a quadrant.
type RedisLocker struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisLocker(client rueidis.Client, prefix string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) error {
	for {
		cmd := r.client.B().Set().
			Key(r.prefix + key).
			Value("1").
			Nx().
			Px(r.ttl).
			Build()

		err := r.client.Do(ctx, cmd).Error()
		if err == nil {
			return nil
		}
		if !rueidis.IsRedisNil(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(acquireRetryInterval):
		}
	}
}

func (r *RedisLocker) Release(ctx context.Context, key string) error {
	cmd := r.client.B().Del().Key(r.prefix + key).Build()
	return r.client.Do(ctx, cmd).Error()
}
