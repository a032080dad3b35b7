package infrastructure

import (
	"context"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewCache returns an ecache backed by the redis server at addr. The
// client is returned so the caller can close it.
func NewCache(ctx context.Context, addr string) (ecache.Cache, *redis.Client, error) {
	cmd := redis.NewClient(&redis.Options{Addr: addr})
	if err := cmd.Ping(ctx).Err(); err != nil {
		_ = cmd.Close()
		return nil, nil, errors.Wrap(err, "ping redis")
	}
	return eredis.NewCache(cmd), cmd, nil
}
