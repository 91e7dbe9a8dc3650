package interfaces

import "context"

// IRateLimiter counts attempts per key inside a fixed window.
type IRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
