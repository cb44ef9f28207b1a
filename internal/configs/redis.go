package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects the client used for quadrant admission locks.
// Client-side caching is disabled: lock keys are written with SET NX and
// never read back, so the cache would only hold stale entries.
func NewRedisClient(addr string) rueidis.Client {
	opt := rueidis.ClientOption{
		InitAddress:  []string{addr},
		DisableCache: true,
	}

	redisClient, err := rueidis.NewClient(opt)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
