package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a universal client for a single node or, when addr lists
// several comma-separated nodes, a cluster. The connection is checked with PING.
func ConnectRedis(ctx context.Context, addr, password string) (redis.UniversalClient, error) {
	var addrs []string
	for _, a := range strings.Split(addr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("redis address is empty")
	}

	var rdb redis.UniversalClient
	if len(addrs) > 1 {
		rdb = redis.NewClusterClient(&redis.ClusterOptions{Addrs: addrs, Password: password})
	} else {
		rdb = redis.NewClient(&redis.Options{Addr: addrs[0], Password: password, DB: 0})
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
