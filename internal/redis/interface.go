package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient to allow for easy mocking.
// The folder, panel, and settings repositories all depend on this
// interface rather than the concrete go-redis client.
type Client interface {
	redis.UniversalClient
}

// PubSub is the subscription handle used by the host event bridge.
type PubSub = redis.PubSub
