package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy swapping between a
// real instance in production and miniredis in tests.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations.
type Pipeliner interface {
	redis.Pipeliner
}
